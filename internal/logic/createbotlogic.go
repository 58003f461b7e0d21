package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"fleetwatch/internal/svc"
	"fleetwatch/internal/types"
)

type CreateBotLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCreateBotLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateBotLogic {
	return &CreateBotLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// CreateBot forwards the payload to the engine and mirrors the stored
// resource into the roster on success.
func (l *CreateBotLogic) CreateBot(req *types.CreateBotReq) (*types.MutateBotResp, error) {
	bot, err := l.svcCtx.Backend.CreateBot(l.ctx, req.ToBotCreate())
	if err != nil {
		l.Errorf("create bot %q: %v", req.Name, err)
		return nil, err
	}
	l.svcCtx.Session.ApplyBot(*bot)
	return &types.MutateBotResp{Bot: *bot}, nil
}
