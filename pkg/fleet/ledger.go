package fleet

import (
	"context"
	"sync"

	"fleetwatch/pkg/backend"
)

// TradeFetcher is the slice of the engine client the ledger loader needs.
type TradeFetcher interface {
	BotTrades(ctx context.Context, botID int64) ([]backend.Trade, error)
}

// TradeLedgerLoader lazily loads per-bot trade history behind a visibility
// toggle. Hiding a panel is pure UI state and never touches the cache;
// re-opening a cached panel issues no fetch. Trade lists keep the engine's
// order and are treated as immutable once fetched.
type TradeLedgerLoader struct {
	fetcher TradeFetcher
	cache   *EntityCache[int64, []backend.Trade]

	mu      sync.Mutex
	visible map[int64]bool
}

// NewTradeLedgerLoader constructs a loader around a fetcher.
func NewTradeLedgerLoader(fetcher TradeFetcher) *TradeLedgerLoader {
	return &TradeLedgerLoader{
		fetcher: fetcher,
		cache:   NewEntityCache[int64, []backend.Trade](),
		visible: make(map[int64]bool),
	}
}

// Toggle flips a bot's trade panel. Opening fetches the history only when it
// is not cached yet; a fetch failure leaves the panel hidden and the error
// sticky in the cache until Invalidate. Returns the new visibility.
func (l *TradeLedgerLoader) Toggle(ctx context.Context, botID int64) bool {
	l.mu.Lock()
	if l.visible[botID] {
		l.visible[botID] = false
		l.mu.Unlock()
		return false
	}
	l.mu.Unlock()

	l.cache.Ensure(botID, func() ([]backend.Trade, error) {
		return l.fetcher.BotTrades(ctx, botID)
	})

	if l.cache.Get(botID).Status != StatusLoaded {
		return false
	}

	l.mu.Lock()
	l.visible[botID] = true
	l.mu.Unlock()
	return true
}

// Visible reports whether a bot's trade panel is open.
func (l *TradeLedgerLoader) Visible(botID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.visible[botID]
}

// Trades returns the cache entry for a bot's history without blocking.
func (l *TradeLedgerLoader) Trades(botID int64) CacheEntry[[]backend.Trade] {
	return l.cache.Get(botID)
}

// RealizedPnl sums realized P/L over the cached trades for a bot. BUY
// records carry no realized P/L and count as zero. When nothing is cached
// yet the sum is 0, not "unknown"; callers that need the distinction consult
// Trades(botID).Status.
func (l *TradeLedgerLoader) RealizedPnl(botID int64) float64 {
	entry := l.cache.Get(botID)
	if entry.Status != StatusLoaded {
		return 0
	}
	var total float64
	for _, trade := range entry.Value {
		if trade.RealizedPnl != nil {
			total += *trade.RealizedPnl
		}
	}
	return total
}

// Invalidate clears a bot's cached history and hides its panel.
func (l *TradeLedgerLoader) Invalidate(botID int64) {
	l.cache.Invalidate(botID)
	l.mu.Lock()
	delete(l.visible, botID)
	l.mu.Unlock()
}

// Reset drops every cached history and closes every panel.
func (l *TradeLedgerLoader) Reset() {
	l.cache.Reset()
	l.mu.Lock()
	l.visible = make(map[int64]bool)
	l.mu.Unlock()
}
