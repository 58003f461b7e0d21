package logic

import (
	"fleetwatch/internal/types"
	"fleetwatch/pkg/backend"
	"fleetwatch/pkg/fleet"
)

// entryView flattens a cache entry into its wire shape.
func entryView[V any](entry fleet.CacheEntry[V]) types.CacheEntryView {
	view := types.CacheEntryView{Status: string(entry.Status)}
	if !entry.FetchedAt.IsZero() {
		at := entry.FetchedAt
		view.FetchedAt = &at
	}
	if entry.Err != nil {
		view.Error = entry.Err.Error()
	}
	return view
}

// botView assembles one roster row from whatever the session has cached.
// Stats and recommendation are omitted rather than guessed when their
// caches have not loaded.
func botView(session *fleet.Session, bot backend.Bot) types.BotView {
	view := types.BotView{
		Bot:    bot,
		Active: bot.IsActive(),
	}
	if stats, ok := session.StatsFor(bot.ID); ok {
		view.Stats = &stats
	}
	if rec, ok := session.Recommendation(bot.ID); ok {
		view.Recommendation = &rec
	}
	return view
}

// indicatorEntry builds the indicator cache view for one symbol. A loaded
// entry with a nil snapshot means the engine has no indicator history yet.
func indicatorEntry(session *fleet.Session, symbol string) types.IndicatorEntryResp {
	symbol = backend.NormalizeSymbol(symbol)
	entry := session.Indicators().Read(symbol)
	resp := types.IndicatorEntryResp{
		Symbol: symbol,
		Entry:  entryView(entry),
	}
	if entry.Status == fleet.StatusLoaded {
		resp.Indicator = entry.Value
	}
	return resp
}

// tradesView reports one bot's trade panel state.
func tradesView(session *fleet.Session, botID int64) types.TradesToggleResp {
	ledger := session.Ledger()
	entry := ledger.Trades(botID)
	resp := types.TradesToggleResp{
		BotID:   botID,
		Visible: ledger.Visible(botID),
		Entry:   entryView(entry),
	}
	if entry.Status == fleet.StatusLoaded {
		resp.Trades = entry.Value
		resp.RealizedPnl = ledger.RealizedPnl(botID)
	}
	return resp
}
