package order

import (
	"context"

	"com.galaxy/pay_channel/channel/internal/svc"
	"com.galaxy/pay_channel/channel/internal/types"
	"com.galaxy/pay_channel/common/paychannel"
	"github.com/jinzhu/copier"
	"github.com/zeromicro/go-zero/core/logx"
)

type RechargeQueryLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewRechargeQueryLogic(ctx context.Context, svcCtx *svc.ServiceContext) RechargeQueryLogic {
	return RechargeQueryLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *RechargeQueryLogic) RechargeQuery(req types.RechargeQueryRequest) (resp *types.RechargeQueryResponse, err error) {
	adapter, account, err := l.svcCtx.LoadChannel(l.ctx, req.ChannelCode, req.MerchantCode)
	if err != nil {
		return nil, err
	}
	acct, err := svc.ToAccount(account)
	if err != nil {
		return nil, err
	}

	ctx, cancel := callContext(l.ctx, l.svcCtx)
	defer cancel()

	result, err := adapter.QueryRecharge(ctx, paychannel.RechargeQueryRequest{
		Account: acct,
		OrderNo: req.OrderNo,
	})
	if err != nil {
		return nil, err
	}

	resp = &types.RechargeQueryResponse{ChannelCode: adapter.Code(), OrderNo: req.OrderNo}
	if err = copier.Copy(resp, result); err != nil {
		l.Errorf("copy query result failed: %v", err)
	}
	return resp, result.Err
}
