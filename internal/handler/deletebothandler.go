package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"fleetwatch/internal/logic"
	"fleetwatch/internal/svc"
	"fleetwatch/internal/types"
)

func DeleteBotHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.BotPathReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewDeleteBotLogic(r.Context(), svcCtx)
		if err := l.DeleteBot(&req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.Ok(w)
		}
	}
}
