package handler

import (
	"net/http"

	notify "com.galaxy/pay_channel/channel/internal/handler/notify"
	order "com.galaxy/pay_channel/channel/internal/handler/order"
	test "com.galaxy/pay_channel/channel/internal/handler/test"
	"com.galaxy/pay_channel/channel/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/recharge",
				Handler: order.RechargeHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/recharge/query",
				Handler: order.RechargeQueryHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/withdraw",
				Handler: order.WithdrawHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/balance",
				Handler: order.BalanceHandler(serverCtx),
			},
		},
		rest.WithPrefix("/api"),
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/recharge/:channel",
				Handler: notify.RechargeNotifyHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/recharge/:channel",
				Handler: notify.RechargeNotifyHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/withdraw/:channel",
				Handler: notify.WithdrawNotifyHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/withdraw/:channel",
				Handler: notify.WithdrawNotifyHandler(serverCtx),
			},
		},
		rest.WithPrefix("/api/notify"),
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/generate-sign",
				Handler: test.GenerateSignHandler(serverCtx),
			},
		},
		rest.WithPrefix("/api/test"),
	)
}
