package logic

import (
	"context"
	"net/http"

	"github.com/zeromicro/go-zero/core/logx"

	"fleetwatch/internal/svc"
	"fleetwatch/internal/types"
	"fleetwatch/pkg/backend"
)

type BotActionLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewBotActionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *BotActionLogic {
	return &BotActionLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// BotAction proxies one of the engine's lifecycle actions and mirrors the
// confirmed resource into the roster. The console never updates its mirror
// optimistically; the engine's answer is the truth.
func (l *BotActionLogic) BotAction(req *types.BotActionReq) (*types.MutateBotResp, error) {
	var (
		bot *backend.Bot
		err error
	)
	switch req.Action {
	case "start":
		bot, err = l.svcCtx.Backend.StartBot(l.ctx, req.ID)
	case "stop":
		bot, err = l.svcCtx.Backend.StopBot(l.ctx, req.ID)
	case "block":
		bot, err = l.svcCtx.Backend.BlockBot(l.ctx, req.ID)
	case "unblock":
		bot, err = l.svcCtx.Backend.UnblockBot(l.ctx, req.ID)
	case "close_position":
		bot, err = l.svcCtx.Backend.CloseBotPosition(l.ctx, req.ID)
	default:
		return nil, &backend.APIError{Status: http.StatusNotFound, Detail: "unknown bot action"}
	}
	if err != nil {
		l.Errorf("bot %d %s: %v", req.ID, req.Action, err)
		return nil, err
	}

	l.svcCtx.Session.ApplyBot(*bot)
	return &types.MutateBotResp{Bot: *bot}, nil
}
