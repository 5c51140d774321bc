package order

import (
	"context"

	"com.galaxy/pay_channel/channel/internal/svc"
	"com.galaxy/pay_channel/channel/internal/types"
	"com.galaxy/pay_channel/common/paychannel"
	"github.com/jinzhu/copier"
	"github.com/zeromicro/go-zero/core/logx"
)

type RechargeLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewRechargeLogic(ctx context.Context, svcCtx *svc.ServiceContext) RechargeLogic {
	return RechargeLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *RechargeLogic) Recharge(req types.RechargeRequest) (resp *types.RechargeResponse, err error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

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

	result, err := adapter.Recharge(ctx, paychannel.RechargeRequest{
		Account: acct,
		OrderNo: req.OrderNo,
		Amount:  amount,
		PayType: req.PayType,
		UserIP:  req.UserIP,
	})
	if err != nil {
		return nil, err
	}

	resp = &types.RechargeResponse{ChannelCode: adapter.Code(), OrderNo: req.OrderNo}
	if err = copier.Copy(resp, result); err != nil {
		l.Errorf("copy recharge result failed: %v", err)
	}
	return resp, result.Err
}
