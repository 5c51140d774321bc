package test

import (
	"context"

	"com.galaxy/pay_channel/channel/internal/svc"
	"com.galaxy/pay_channel/channel/internal/types"
	"com.galaxy/pay_channel/common/errorz"
	"com.galaxy/pay_channel/common/response"
	"github.com/zeromicro/go-zero/core/logx"
)

type GenerateSignLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGenerateSignLogic(ctx context.Context, svcCtx *svc.ServiceContext) GenerateSignLogic {
	return GenerateSignLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// GenerateSign 以渠道簽名規則與商戶密鑰計算簽名，供對接測試
func (l *GenerateSignLogic) GenerateSign(req types.GenerateSignRequest) (resp *types.GenerateSignResponse, err error) {
	if len(req.Params) == 0 {
		return nil, errorz.New(response.INVALID_PARAMETER, "params is empty")
	}

	adapter, account, err := l.svcCtx.LoadChannel(l.ctx, req.ChannelCode, req.MerchantCode)
	if err != nil {
		return nil, err
	}
	if account.PrivateKey == "" {
		return nil, errorz.New(response.CHANNEL_PRIVATE_KEY_EMPTY, "merchant: "+account.MerchantCode)
	}

	signed := adapter.Signer().Attach(req.Params, account.PrivateKey)
	return &types.GenerateSignResponse{
		Sign:   signed["sign"],
		Params: signed,
	}, nil
}
