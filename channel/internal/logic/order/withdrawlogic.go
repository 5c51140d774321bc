package order

import (
	"context"

	"com.galaxy/pay_channel/channel/internal/svc"
	"com.galaxy/pay_channel/channel/internal/types"
	"com.galaxy/pay_channel/common/paychannel"
	"github.com/jinzhu/copier"
	"github.com/zeromicro/go-zero/core/logx"
)

type WithdrawLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewWithdrawLogic(ctx context.Context, svcCtx *svc.ServiceContext) WithdrawLogic {
	return WithdrawLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Withdraw 代付下單，渠道拒絕時回傳渠道原始 code/message/data
func (l *WithdrawLogic) Withdraw(req types.WithdrawRequest) (resp *types.WithdrawResponse, err error) {
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

	result, err := adapter.Withdraw(ctx, paychannel.WithdrawRequest{
		Account:     acct,
		OrderNo:     req.OrderNo,
		Amount:      amount,
		BankCode:    req.BankCode,
		BankName:    req.BankName,
		BankBranch:  req.BankBranch,
		BankAccount: req.BankAccount,
		AccountName: req.AccountName,
	})
	if err != nil {
		return nil, err
	}

	resp = &types.WithdrawResponse{ChannelCode: adapter.Code(), OrderNo: req.OrderNo}
	if err = copier.Copy(resp, result); err != nil {
		l.Errorf("copy withdraw result failed: %v", err)
	}
	return resp, result.Err
}
