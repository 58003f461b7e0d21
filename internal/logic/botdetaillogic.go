package logic

import (
	"context"
	"net/http"

	"github.com/zeromicro/go-zero/core/logx"

	"fleetwatch/internal/svc"
	"fleetwatch/internal/types"
	"fleetwatch/pkg/backend"
)

type BotDetailLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewBotDetailLogic(ctx context.Context, svcCtx *svc.ServiceContext) *BotDetailLogic {
	return &BotDetailLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// BotDetail renders one bot card: the roster row plus its symbol's indicator
// cache entry and the trade panel state.
func (l *BotDetailLogic) BotDetail(req *types.BotPathReq) (*types.BotDetailResp, error) {
	session := l.svcCtx.Session
	bot, ok := session.Store().Get(req.ID)
	if !ok {
		return nil, &backend.APIError{Status: http.StatusNotFound, Detail: "unknown bot id"}
	}

	return &types.BotDetailResp{
		Bot:       botView(session, bot),
		Indicator: indicatorEntry(session, bot.Symbol),
		Trades:    tradesView(session, bot.ID),
	}, nil
}
