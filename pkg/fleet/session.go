package fleet

import (
	"context"
	"fmt"

	"fleetwatch/pkg/backend"
)

// Fetcher is everything the session needs from the engine client.
type Fetcher interface {
	IndicatorFetcher
	TradeFetcher
	ListBots(ctx context.Context) ([]backend.Bot, error)
	StatsByBot(ctx context.Context) ([]backend.BotStats, error)
	StatsSummary(ctx context.Context) (*backend.FleetSummary, error)
}

// Cache keys for the single-entry stats caches.
const (
	statsKey   = "by_bot"
	summaryKey = "summary"
)

// Session is the console's monitoring state for one operator view: the
// mirrored roster, the indicator and trade caches, and the stats rollups.
// It is constructed once per view and torn down with it; nothing survives
// across sessions. All fetch state lives in explicit caches with defined
// idle/loading/loaded/error lifecycles.
type Session struct {
	fetcher    Fetcher
	store      *FleetStore
	indicators *IndicatorSynchronizer
	ledger     *TradeLedgerLoader
	stats      *EntityCache[string, map[int64]backend.BotStats]
	summary    *EntityCache[string, backend.FleetSummary]
}

// NewSession wires a session around an engine client.
func NewSession(fetcher Fetcher) *Session {
	return &Session{
		fetcher:    fetcher,
		store:      NewFleetStore(),
		indicators: NewIndicatorSynchronizer(fetcher),
		ledger:     NewTradeLedgerLoader(fetcher),
		stats:      NewEntityCache[string, map[int64]backend.BotStats](),
		summary:    NewEntityCache[string, backend.FleetSummary](),
	}
}

// Store exposes the roster view.
func (s *Session) Store() *FleetStore { return s.store }

// Indicators exposes the indicator synchronizer.
func (s *Session) Indicators() *IndicatorSynchronizer { return s.indicators }

// Ledger exposes the trade history loader.
func (s *Session) Ledger() *TradeLedgerLoader { return s.ledger }

// Refresh is the explicit, operator-initiated reload: it replaces the roster
// from the engine, drops the indicator and stats caches, and re-runs a
// synchronization pass. Trade histories are left cached; they are refreshed
// per bot via InvalidateTrades. Refresh fails only when the roster itself
// cannot be fetched; indicator and stats failures stay contained to their
// cache entries.
func (s *Session) Refresh(ctx context.Context) error {
	bots, err := s.fetcher.ListBots(ctx)
	if err != nil {
		return fmt.Errorf("fleet: refresh roster: %w", err)
	}
	s.store.SetRoster(bots)
	s.indicators.Reset()
	s.stats.Reset()
	s.summary.Reset()
	s.Synchronize(ctx)
	return nil
}

// Synchronize drives one fetch pass over the current roster: indicator
// snapshots for every distinct active symbol plus the stats rollups. Keys
// already loading, loaded or in error are untouched, so calling this
// repeatedly is cheap and never clears a prior error.
func (s *Session) Synchronize(ctx context.Context) {
	s.indicators.Synchronize(ctx, s.store.ActiveBots())
	s.stats.Ensure(statsKey, func() (map[int64]backend.BotStats, error) {
		rows, err := s.fetcher.StatsByBot(ctx)
		if err != nil {
			return nil, err
		}
		byBot := make(map[int64]backend.BotStats, len(rows))
		for _, row := range rows {
			byBot[row.BotID] = row
		}
		return byBot, nil
	})
	s.summary.Ensure(summaryKey, func() (backend.FleetSummary, error) {
		summary, err := s.fetcher.StatsSummary(ctx)
		if err != nil {
			return backend.FleetSummary{}, err
		}
		return *summary, nil
	})
}

// StatsFor returns the cached stats row for one bot.
func (s *Session) StatsFor(botID int64) (backend.BotStats, bool) {
	entry := s.stats.Get(statsKey)
	if entry.Status != StatusLoaded {
		return backend.BotStats{}, false
	}
	row, ok := entry.Value[botID]
	return row, ok
}

// StatsState reports the lifecycle of the per-bot stats fetch.
func (s *Session) StatsState() CacheStatus {
	return s.stats.Get(statsKey).Status
}

// Summary returns the cached fleet summary entry.
func (s *Session) Summary() CacheEntry[backend.FleetSummary] {
	return s.summary.Get(summaryKey)
}

// Recommendation synthesizes the current reading for one bot from whatever
// is cached right now. Idle, loading and errored indicator entries all read
// as "no indicator", so the result is well-defined mid-synchronization.
func (s *Session) Recommendation(botID int64) (Recommendation, bool) {
	bot, ok := s.store.Get(botID)
	if !ok {
		return Recommendation{}, false
	}
	var ind *backend.Indicator
	if entry := s.indicators.Read(bot.Symbol); entry.Status == StatusLoaded {
		ind = entry.Value
	}
	return Synthesize(bot, ind), true
}

// ToggleTrades flips a bot's trade panel and returns the new visibility with
// the current cache entry.
func (s *Session) ToggleTrades(ctx context.Context, botID int64) (bool, CacheEntry[[]backend.Trade]) {
	visible := s.ledger.Toggle(ctx, botID)
	return visible, s.ledger.Trades(botID)
}

// InvalidateTrades drops one bot's cached history so the next toggle
// re-fetches it.
func (s *Session) InvalidateTrades(botID int64) {
	s.ledger.Invalidate(botID)
}

// ApplyBot mirrors an engine mutation confirmation into the roster.
func (s *Session) ApplyBot(bot backend.Bot) {
	s.store.Upsert(bot)
}

// RemoveBot mirrors an engine deletion into the roster and drops the bot's
// cached history.
func (s *Session) RemoveBot(botID int64) {
	s.store.Remove(botID)
	s.ledger.Invalidate(botID)
}
