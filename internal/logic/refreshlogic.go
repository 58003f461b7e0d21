package logic

import (
	"context"
	"sort"

	"github.com/zeromicro/go-zero/core/logx"

	"fleetwatch/internal/svc"
	"fleetwatch/internal/types"
	"fleetwatch/pkg/backend"
	"fleetwatch/pkg/journal"
)

type RefreshLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewRefreshLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RefreshLogic {
	return &RefreshLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Refresh is the operator's explicit reload: roster from the engine, then a
// fresh indicator and stats pass. It fails only when the roster fetch fails;
// per-symbol and stats errors land in their cache entries instead.
func (l *RefreshLogic) Refresh() (*types.RefreshResp, error) {
	session := l.svcCtx.Session
	if err := session.Refresh(l.ctx); err != nil {
		l.Errorf("refresh: %v", err)
		l.journal(nil, err)
		return nil, err
	}

	active := session.Store().ActiveBots()
	seen := make(map[string]struct{}, len(active))
	symbols := make([]string, 0, len(active))
	for _, bot := range active {
		symbol := backend.NormalizeSymbol(bot.Symbol)
		if _, ok := seen[symbol]; ok {
			continue
		}
		seen[symbol] = struct{}{}
		symbols = append(symbols, symbol)
	}

	l.journal(symbols, nil)
	return &types.RefreshResp{
		Bots:       session.Store().Len(),
		ActiveBots: len(active),
		Symbols:    len(symbols),
	}, nil
}

// journal records the refresh outcome when a journal directory is configured.
func (l *RefreshLogic) journal(symbols []string, refreshErr error) {
	writer := l.svcCtx.Journal
	if writer == nil {
		return
	}

	session := l.svcCtx.Session
	rec := &journal.RefreshRecord{
		Bots:       session.Store().Len(),
		ActiveBots: len(session.Store().ActiveBots()),
		Symbols:    symbols,
		Success:    refreshErr == nil,
	}
	if refreshErr != nil {
		rec.ErrorMessage = refreshErr.Error()
	}

	sort.Strings(rec.Symbols)
	for _, symbol := range symbols {
		if entry := session.Indicators().Read(symbol); entry.Err != nil {
			if rec.IndicatorErrors == nil {
				rec.IndicatorErrors = make(map[string]string)
			}
			rec.IndicatorErrors[symbol] = entry.Err.Error()
		}
	}
	if entry := session.Summary(); entry.Err != nil {
		rec.StatsError = entry.Err.Error()
	}

	if _, err := writer.WriteRefresh(rec); err != nil {
		l.Errorf("refresh: journal write: %v", err)
	}
}
