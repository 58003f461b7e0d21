package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"fleetwatch/internal/svc"
	"fleetwatch/internal/types"
)

type SystemLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSystemLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SystemLogic {
	return &SystemLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// System probes the engine's health endpoint and its global run toggle.
func (l *SystemLogic) System() (*types.SystemResp, error) {
	health, err := l.svcCtx.Backend.Health(l.ctx)
	if err != nil {
		l.Errorf("system: health: %v", err)
		return nil, err
	}
	state, err := l.svcCtx.Backend.State(l.ctx)
	if err != nil {
		l.Errorf("system: state: %v", err)
		return nil, err
	}
	return &types.SystemResp{Health: health, State: state}, nil
}
