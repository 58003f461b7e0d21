package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"fleetwatch/internal/svc"
	"fleetwatch/internal/types"
)

type BotListLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewBotListLogic(ctx context.Context, svcCtx *svc.ServiceContext) *BotListLogic {
	return &BotListLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Bots renders the roster in engine order, each row annotated with the
// active flag, cached stats, and the synthesized recommendation.
func (l *BotListLogic) Bots() (*types.BotListResp, error) {
	session := l.svcCtx.Session
	bots := session.Store().Bots()

	views := make([]types.BotView, 0, len(bots))
	for _, bot := range bots {
		views = append(views, botView(session, bot))
	}
	return &types.BotListResp{Bots: views}, nil
}
