package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"fleetwatch/internal/logic"
	"fleetwatch/internal/svc"
	"fleetwatch/internal/types"
)

// BotActionHandler serves every lifecycle route; the action comes from the
// route registration, not from the request.
func BotActionHandler(svcCtx *svc.ServiceContext, action string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.BotActionReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		req.Action = action

		l := logic.NewBotActionLogic(r.Context(), svcCtx)
		resp, err := l.BotAction(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
