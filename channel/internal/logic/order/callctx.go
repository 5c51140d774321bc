package order

import (
	"context"
	"time"

	"com.galaxy/pay_channel/channel/internal/svc"
	"com.galaxy/pay_channel/common/errorz"
	"com.galaxy/pay_channel/common/response"
	"com.galaxy/pay_channel/common/utils"
	"github.com/shopspring/decimal"
)

// callContext 渠道呼叫加上逾時
func callContext(ctx context.Context, svcCtx *svc.ServiceContext) (context.Context, context.CancelFunc) {
	if svcCtx.Config.CallTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, time.Duration(svcCtx.Config.CallTimeout)*time.Second)
}

func parseAmount(amount string) (decimal.Decimal, error) {
	d, err := utils.ParseAmount(amount)
	if err != nil {
		return decimal.Zero, errorz.New(response.INVALID_PARAMETER, "amount: "+amount)
	}
	return d, nil
}
