package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"fleetwatch/internal/logic"
	"fleetwatch/internal/svc"
	"fleetwatch/internal/types"
)

func CreateBotHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.CreateBotReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewCreateBotLogic(r.Context(), svcCtx)
		resp, err := l.CreateBot(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
