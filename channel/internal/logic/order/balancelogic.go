package order

import (
	"context"

	"com.galaxy/pay_channel/channel/internal/svc"
	"com.galaxy/pay_channel/channel/internal/types"
	"github.com/jinzhu/copier"
	"github.com/zeromicro/go-zero/core/logx"
)

type BalanceLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewBalanceLogic(ctx context.Context, svcCtx *svc.ServiceContext) BalanceLogic {
	return BalanceLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *BalanceLogic) Balance(req types.BalanceRequest) (resp *types.BalanceResponse, err error) {
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

	result, err := adapter.QueryBalance(ctx, acct)
	if err != nil {
		return nil, err
	}

	resp = &types.BalanceResponse{ChannelCode: adapter.Code(), MerchantCode: account.MerchantCode}
	if err = copier.Copy(resp, result); err != nil {
		l.Errorf("copy balance result failed: %v", err)
	}
	return resp, result.Err
}
