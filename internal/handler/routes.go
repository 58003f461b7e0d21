package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"fleetwatch/internal/svc"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/overview",
				Handler: OverviewHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/refresh",
				Handler: RefreshHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/bots",
				Handler: BotListHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/bots",
				Handler: CreateBotHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/bots/:id",
				Handler: BotDetailHandler(serverCtx),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/bots/:id",
				Handler: DeleteBotHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/bots/:id/start",
				Handler: BotActionHandler(serverCtx, "start"),
			},
			{
				Method:  http.MethodPost,
				Path:    "/bots/:id/stop",
				Handler: BotActionHandler(serverCtx, "stop"),
			},
			{
				Method:  http.MethodPost,
				Path:    "/bots/:id/block",
				Handler: BotActionHandler(serverCtx, "block"),
			},
			{
				Method:  http.MethodPost,
				Path:    "/bots/:id/unblock",
				Handler: BotActionHandler(serverCtx, "unblock"),
			},
			{
				Method:  http.MethodPost,
				Path:    "/bots/:id/close_position",
				Handler: BotActionHandler(serverCtx, "close_position"),
			},
			{
				Method:  http.MethodPost,
				Path:    "/bots/:id/trades/toggle",
				Handler: TradesToggleHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/indicators/:symbol",
				Handler: IndicatorHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/system",
				Handler: SystemHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/system/toggle",
				Handler: SystemToggleHandler(serverCtx),
			},
		},
		rest.WithPrefix("/api/fleet"),
	)
}
