package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"fleetwatch/internal/svc"
	"fleetwatch/internal/types"
)

type DeleteBotLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDeleteBotLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteBotLogic {
	return &DeleteBotLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// DeleteBot removes the bot engine-side, then drops it from the roster along
// with its cached trade history.
func (l *DeleteBotLogic) DeleteBot(req *types.BotPathReq) error {
	if err := l.svcCtx.Backend.DeleteBot(l.ctx, req.ID); err != nil {
		l.Errorf("delete bot %d: %v", req.ID, err)
		return err
	}
	l.svcCtx.Session.RemoveBot(req.ID)
	return nil
}
