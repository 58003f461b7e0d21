package logic

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"fleetwatch/internal/svc"
	"fleetwatch/internal/types"
	"fleetwatch/pkg/fleet"
)

type OverviewLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewOverviewLogic(ctx context.Context, svcCtx *svc.ServiceContext) *OverviewLogic {
	return &OverviewLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Overview renders the fleet dashboard header: roster counters, the stats
// rollup caches, and a live health probe. Engine health failures are reported
// in-band so the dashboard still renders when the engine is down.
func (l *OverviewLogic) Overview() (*types.OverviewResp, error) {
	session := l.svcCtx.Session

	resp := &types.OverviewResp{
		GeneratedAt:  time.Now().UTC(),
		TotalBots:    session.Store().Len(),
		ActiveBots:   len(session.Store().ActiveBots()),
		SummaryEntry: entryView(session.Summary()),
		StatsEntry:   types.CacheEntryView{Status: string(session.StatsState())},
	}
	if summary := session.Summary(); summary.Status == fleet.StatusLoaded {
		value := summary.Value
		resp.Summary = &value
	}

	health, err := l.svcCtx.Backend.Health(l.ctx)
	if err != nil {
		l.Errorf("overview: engine health probe failed: %v", err)
		resp.HealthError = err.Error()
		return resp, nil
	}
	resp.Health = health

	if state, err := l.svcCtx.Backend.State(l.ctx); err != nil {
		l.Errorf("overview: engine state probe failed: %v", err)
	} else {
		resp.SystemRunning = &state.SystemRunning
	}
	return resp, nil
}
