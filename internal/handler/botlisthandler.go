package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"fleetwatch/internal/logic"
	"fleetwatch/internal/svc"
)

func BotListHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewBotListLogic(r.Context(), svcCtx)
		resp, err := l.Bots()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
