package logic

import (
	"context"
	"net/http"

	"github.com/zeromicro/go-zero/core/logx"

	"fleetwatch/internal/svc"
	"fleetwatch/internal/types"
	"fleetwatch/pkg/backend"
)

type TradesToggleLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewTradesToggleLogic(ctx context.Context, svcCtx *svc.ServiceContext) *TradesToggleLogic {
	return &TradesToggleLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// TradesToggle flips a bot's trade panel. Opening an uncached panel fetches
// the history; a failed fetch keeps the panel hidden and the error readable
// in the returned cache entry.
func (l *TradesToggleLogic) TradesToggle(req *types.BotPathReq) (*types.TradesToggleResp, error) {
	session := l.svcCtx.Session
	if _, ok := session.Store().Get(req.ID); !ok {
		return nil, &backend.APIError{Status: http.StatusNotFound, Detail: "unknown bot id"}
	}

	if _, entry := session.ToggleTrades(l.ctx, req.ID); entry.Err != nil {
		l.Errorf("trades toggle: bot %d history fetch failed: %v", req.ID, entry.Err)
	}

	resp := tradesView(session, req.ID)
	return &resp, nil
}
