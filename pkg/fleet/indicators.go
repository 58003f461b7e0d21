package fleet

import (
	"context"

	"github.com/zeromicro/go-zero/core/mr"

	"fleetwatch/pkg/backend"
)

const indicatorFetchWorkers = 4

// IndicatorFetcher is the slice of the engine client the synchronizer needs.
type IndicatorFetcher interface {
	LatestIndicator(ctx context.Context, symbol string) (*backend.Indicator, error)
}

// IndicatorSynchronizer keeps one indicator snapshot cached per distinct
// symbol traded by the active fleet. Snapshots are shared across bots on the
// same symbol. A nil value in a loaded entry means the engine has no
// indicator history for that symbol yet, which is a valid empty state and
// not an error.
type IndicatorSynchronizer struct {
	fetcher IndicatorFetcher
	cache   *EntityCache[string, *backend.Indicator]
}

// NewIndicatorSynchronizer constructs a synchronizer around a fetcher.
func NewIndicatorSynchronizer(fetcher IndicatorFetcher) *IndicatorSynchronizer {
	return &IndicatorSynchronizer{
		fetcher: fetcher,
		cache:   NewEntityCache[string, *backend.Indicator](),
	}
}

// Synchronize derives the distinct symbol set from the active bots and
// ensures each symbol has an indicator fetch issued or completed. Symbols
// already loading, loaded or in error are skipped, so a full pass over an
// unchanged fleet issues zero requests. Fetches for different symbols run
// concurrently; per-symbol dedup is guaranteed by the cache.
func (s *IndicatorSynchronizer) Synchronize(ctx context.Context, activeBots []backend.Bot) {
	symbols := distinctSymbols(activeBots)
	if len(symbols) == 0 {
		return
	}
	if len(symbols) == 1 {
		s.ensure(ctx, symbols[0])
		return
	}
	mr.ForEach(func(source chan<- string) {
		for _, symbol := range symbols {
			source <- symbol
		}
	}, func(symbol string) {
		s.ensure(ctx, symbol)
	}, mr.WithContext(ctx), mr.WithWorkers(indicatorFetchWorkers))
}

func (s *IndicatorSynchronizer) ensure(ctx context.Context, symbol string) {
	s.cache.Ensure(symbol, func() (*backend.Indicator, error) {
		ind, err := s.fetcher.LatestIndicator(ctx, symbol)
		if backend.IsNotFound(err) {
			// No indicator history yet: a successful fetch of "no data".
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return ind, nil
	})
}

// Read returns the cache entry for a symbol without blocking.
func (s *IndicatorSynchronizer) Read(symbol string) CacheEntry[*backend.Indicator] {
	return s.cache.Get(backend.NormalizeSymbol(symbol))
}

// Invalidate resets one symbol so the next pass re-fetches it.
func (s *IndicatorSynchronizer) Invalidate(symbol string) {
	s.cache.Invalidate(backend.NormalizeSymbol(symbol))
}

// Reset drops all cached snapshots.
func (s *IndicatorSynchronizer) Reset() {
	s.cache.Reset()
}

// distinctSymbols collapses the active bots' symbols into a normalized,
// order-preserving set.
func distinctSymbols(bots []backend.Bot) []string {
	seen := make(map[string]struct{}, len(bots))
	symbols := make([]string, 0, len(bots))
	for _, bot := range bots {
		symbol := backend.NormalizeSymbol(bot.Symbol)
		if symbol == "" {
			continue
		}
		if _, ok := seen[symbol]; ok {
			continue
		}
		seen[symbol] = struct{}{}
		symbols = append(symbols, symbol)
	}
	return symbols
}
