package order

import (
	"encoding/json"
	"net/http"

	"com.galaxy/pay_channel/channel/internal/logic/order"
	"com.galaxy/pay_channel/channel/internal/svc"
	"com.galaxy/pay_channel/channel/internal/types"
	"com.galaxy/pay_channel/common/response"
	"com.galaxy/pay_channel/common/utils"
	"github.com/zeromicro/go-zero/rest/httpx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func WithdrawHandler(ctx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.WithdrawRequest

		span := trace.SpanFromContext(r.Context())
		defer span.End()

		if err := httpx.Parse(r, &req); err != nil {
			response.Json(w, r, response.FAIL, nil, err)
			return
		}

		if err := utils.MyValidator.Struct(req); err != nil {
			response.Json(w, r, response.INVALID_PARAMETER, nil, err)
			return
		}

		// span 不記錄完整銀行帳號
		masked := req
		masked.BankAccount = utils.MaskSensitive(req.BankAccount, 4, 4)
		masked.AccountName = utils.MaskSensitive(req.AccountName, 1, 0)
		if requestBytes, err := json.Marshal(masked); err == nil {
			span.SetAttributes(attribute.KeyValue{
				Key:   "request",
				Value: attribute.StringValue(string(requestBytes)),
			})
		}

		l := order.NewWithdrawLogic(r.Context(), ctx)
		resp, err := l.Withdraw(req)
		if err != nil {
			response.Json(w, r, err.Error(), resp, err)
		} else {
			response.Json(w, r, response.SUCCESS, resp, err)
		}
	}
}
