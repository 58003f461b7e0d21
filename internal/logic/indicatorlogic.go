package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"fleetwatch/internal/svc"
	"fleetwatch/internal/types"
)

type IndicatorLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewIndicatorLogic(ctx context.Context, svcCtx *svc.ServiceContext) *IndicatorLogic {
	return &IndicatorLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Indicator exposes the indicator cache entry for one symbol as-is: idle for
// symbols no active bot trades, loaded-with-nil for symbols the engine has no
// history for yet, and the sticky error otherwise.
func (l *IndicatorLogic) Indicator(req *types.SymbolPathReq) (*types.IndicatorEntryResp, error) {
	resp := indicatorEntry(l.svcCtx.Session, req.Symbol)
	return &resp, nil
}
