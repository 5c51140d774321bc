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

func RechargeQueryHandler(ctx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.RechargeQueryRequest

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

		if requestBytes, err := json.Marshal(req); err == nil {
			span.SetAttributes(attribute.KeyValue{
				Key:   "request",
				Value: attribute.StringValue(string(requestBytes)),
			})
		}

		l := order.NewRechargeQueryLogic(r.Context(), ctx)
		resp, err := l.RechargeQuery(req)
		if err != nil {
			response.Json(w, r, err.Error(), resp, err)
		} else {
			response.Json(w, r, response.SUCCESS, resp, err)
		}
	}
}
