package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"fleetwatch/internal/svc"
	"fleetwatch/internal/types"
)

type SystemToggleLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSystemToggleLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SystemToggleLogic {
	return &SystemToggleLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SystemToggle flips the engine's global run switch and returns the state
// the engine confirmed.
func (l *SystemToggleLogic) SystemToggle() (*types.ToggleSystemResp, error) {
	state, err := l.svcCtx.Backend.ToggleSystem(l.ctx)
	if err != nil {
		l.Errorf("system toggle: %v", err)
		return nil, err
	}
	return &types.ToggleSystemResp{State: *state}, nil
}
