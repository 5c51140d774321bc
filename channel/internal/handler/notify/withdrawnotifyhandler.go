package notify

import (
	"encoding/json"
	"net/http"

	"com.galaxy/pay_channel/channel/internal/logic/notify"
	"com.galaxy/pay_channel/channel/internal/svc"
	"com.galaxy/pay_channel/channel/internal/types"
	"com.galaxy/pay_channel/common/constants"
	"com.galaxy/pay_channel/common/response"
	"github.com/thinkeridea/go-extend/exnet"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// WithdrawNotifyHandler 代付回調，處理成功回應渠道指定字串，其餘回應 fail 讓渠道重送
func WithdrawNotifyHandler(ctx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var path types.NotifyPathRequest

		span := trace.SpanFromContext(r.Context())
		defer span.End()

		if err := httpx.ParsePath(r, &path); err != nil {
			response.Text(w, r, constants.NOTIFY_REJECT_PRINT)
			return
		}

		payload, err := parsePayload(r)
		if err != nil {
			logx.WithContext(r.Context()).Errorf("[%s]代付回調參數錯誤: %v", path.Channel, err)
			response.Text(w, r, constants.NOTIFY_REJECT_PRINT)
			return
		}

		// 白名單只認 TCP 來源位址，X-Forwarded-For 可偽造
		ip := exnet.RemoteIP(r)
		if requestBytes, err := json.Marshal(payload); err == nil {
			span.SetAttributes(
				attribute.String("channel", path.Channel),
				attribute.String("ip", ip),
				attribute.KeyValue{Key: "request", Value: attribute.StringValue(string(requestBytes))},
			)
		}

		l := notify.NewNotifyLogic(r.Context(), ctx)
		ack, err := l.WithdrawNotify(notify.Notify{
			ChannelCode: path.Channel,
			ClientIP:    ip,
			Payload:     payload,
		})
		if err != nil {
			logx.WithContext(r.Context()).Errorf("[%s]代付回調失敗(%s): %v", path.Channel, l.State(), err)
			span.RecordError(err)
			response.Text(w, r, constants.NOTIFY_REJECT_PRINT)
			return
		}
		response.Text(w, r, ack)
	}
}
