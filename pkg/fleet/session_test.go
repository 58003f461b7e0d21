package fleet

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetwatch/pkg/backend"
)

// fakeEngine implements Fetcher in memory for session tests.
type fakeEngine struct {
	mu sync.Mutex

	bots       []backend.Bot
	listErr    error
	indicators map[string]*backend.Indicator
	indicErr   error
	trades     map[int64][]backend.Trade
	stats      []backend.BotStats
	statsErr   error
	summary    backend.FleetSummary
	summaryErr error

	listCalls      int
	indicatorCalls map[string]int
	statsCalls     int
	summaryCalls   int
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		indicators:     make(map[string]*backend.Indicator),
		trades:         make(map[int64][]backend.Trade),
		indicatorCalls: make(map[string]int),
	}
}

func (f *fakeEngine) ListBots(ctx context.Context) ([]backend.Bot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]backend.Bot(nil), f.bots...), nil
}

func (f *fakeEngine) LatestIndicator(ctx context.Context, symbol string) (*backend.Indicator, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.indicatorCalls[symbol]++
	if f.indicErr != nil {
		return nil, f.indicErr
	}
	return f.indicators[symbol], nil
}

func (f *fakeEngine) BotTrades(ctx context.Context, botID int64) ([]backend.Trade, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.trades[botID], nil
}

func (f *fakeEngine) StatsByBot(ctx context.Context) ([]backend.BotStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statsCalls++
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return f.stats, nil
}

func (f *fakeEngine) StatsSummary(ctx context.Context) (*backend.FleetSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.summaryCalls++
	if f.summaryErr != nil {
		return nil, f.summaryErr
	}
	out := f.summary
	return &out, nil
}

func (f *fakeEngine) calls(symbol string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.indicatorCalls[symbol]
}

func TestSession_RefreshLoadsRosterIndicatorsAndStats(t *testing.T) {
	engine := newFakeEngine()
	engine.bots = []backend.Bot{
		testBot(1, "BTCUSDT", backend.BotOnline, false),
		testBot(2, "ETHUSDT", backend.BotOnline, false),
		testBot(3, "SOLUSDT", backend.BotOffline, false),
	}
	engine.indicators["BTCUSDT"] = fullIndicator(true, false, 25, 5, backend.TrendBullish)
	engine.indicators["ETHUSDT"] = fullIndicator(false, false, 50, 0, backend.TrendNeutral)
	engine.stats = []backend.BotStats{{BotID: 1, NumTrades: 12}, {BotID: 2, NumTrades: 3}}
	engine.summary = backend.FleetSummary{TotalBots: 3, TotalBotsOnline: 2}

	session := NewSession(engine)
	require.NoError(t, session.Refresh(context.Background()))

	assert.Equal(t, 3, session.Store().Len())
	assert.Equal(t, StatusLoaded, session.Indicators().Read("BTCUSDT").Status)
	assert.Equal(t, StatusLoaded, session.Indicators().Read("ETHUSDT").Status)
	// Offline bots do not drive indicator fetches.
	assert.Equal(t, StatusIdle, session.Indicators().Read("SOLUSDT").Status)

	assert.Equal(t, StatusLoaded, session.StatsState())
	row, ok := session.StatsFor(1)
	require.True(t, ok)
	assert.Equal(t, 12, row.NumTrades)
	_, ok = session.StatsFor(3)
	assert.False(t, ok, "no stats row for bot 3")

	summary := session.Summary()
	require.Equal(t, StatusLoaded, summary.Status)
	assert.Equal(t, 2, summary.Value.TotalBotsOnline)
}

func TestSession_RefreshFailsOnlyOnRosterError(t *testing.T) {
	engine := newFakeEngine()
	engine.bots = []backend.Bot{testBot(1, "BTCUSDT", backend.BotOnline, false)}
	engine.indicErr = errors.New("engine down")
	engine.statsErr = errors.New("engine down")

	session := NewSession(engine)
	require.NoError(t, session.Refresh(context.Background()),
		"indicator and stats failures stay in their cache entries")
	assert.Equal(t, StatusError, session.Indicators().Read("BTCUSDT").Status)
	assert.Equal(t, StatusError, session.StatsState())

	engine.mu.Lock()
	engine.listErr = errors.New("roster unreachable")
	engine.mu.Unlock()
	err := session.Refresh(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "refresh roster")
}

func TestSession_RecommendationDegradesMidSynchronization(t *testing.T) {
	engine := newFakeEngine()
	engine.bots = []backend.Bot{testBot(1, "BTCUSDT", backend.BotOnline, false)}
	engine.indicErr = errors.New("timeout")

	session := NewSession(engine)
	require.NoError(t, session.Refresh(context.Background()))

	// Errored indicator entry reads as "no indicator": conservative hold.
	rec, ok := session.Recommendation(1)
	require.True(t, ok)
	assert.Equal(t, HoldPosition, rec.Code)
	assert.Equal(t, []string{reasonNoIndicator}, rec.Reasons)

	_, ok = session.Recommendation(99)
	assert.False(t, ok)
}

func TestSession_RefreshClearsStickyIndicatorError(t *testing.T) {
	engine := newFakeEngine()
	engine.bots = []backend.Bot{testBot(1, "BTCUSDT", backend.BotOnline, false)}
	engine.indicErr = errors.New("timeout")

	session := NewSession(engine)
	require.NoError(t, session.Refresh(context.Background()))
	require.Equal(t, StatusError, session.Indicators().Read("BTCUSDT").Status)

	// Plain synchronize passes never clear the error.
	session.Synchronize(context.Background())
	assert.Equal(t, StatusError, session.Indicators().Read("BTCUSDT").Status)
	assert.Equal(t, 1, engine.calls("BTCUSDT"))

	engine.mu.Lock()
	engine.indicErr = nil
	engine.indicators["BTCUSDT"] = fullIndicator(true, false, 25, 5, backend.TrendBullish)
	engine.mu.Unlock()

	require.NoError(t, session.Refresh(context.Background()))
	assert.Equal(t, StatusLoaded, session.Indicators().Read("BTCUSDT").Status)

	rec, ok := session.Recommendation(1)
	require.True(t, ok)
	assert.Equal(t, EvaluateEntry, rec.Code)
}

func TestSession_ToggleTradesAndInvalidate(t *testing.T) {
	engine := newFakeEngine()
	engine.bots = []backend.Bot{testBot(1, "BTCUSDT", backend.BotOnline, false)}
	engine.trades[1] = []backend.Trade{
		{ID: 1, BotID: 1, Side: backend.SideSell, RealizedPnl: pnl(4)},
	}

	session := NewSession(engine)
	require.NoError(t, session.Refresh(context.Background()))

	visible, entry := session.ToggleTrades(context.Background(), 1)
	assert.True(t, visible)
	require.Equal(t, StatusLoaded, entry.Status)
	require.Len(t, entry.Value, 1)

	visible, _ = session.ToggleTrades(context.Background(), 1)
	assert.False(t, visible)

	session.InvalidateTrades(1)
	assert.Equal(t, StatusIdle, session.Ledger().Trades(1).Status)
}

func TestSession_ApplyAndRemoveBot(t *testing.T) {
	engine := newFakeEngine()
	engine.bots = []backend.Bot{testBot(1, "BTCUSDT", backend.BotOnline, false)}
	engine.trades[1] = []backend.Trade{{ID: 1, BotID: 1, Side: backend.SideBuy}}

	session := NewSession(engine)
	require.NoError(t, session.Refresh(context.Background()))

	updated := testBot(1, "BTCUSDT", backend.BotOffline, false)
	session.ApplyBot(updated)
	got, ok := session.Store().Get(1)
	require.True(t, ok)
	assert.Equal(t, backend.BotOffline, got.Status)

	session.ToggleTrades(context.Background(), 1)
	session.RemoveBot(1)
	_, ok = session.Store().Get(1)
	assert.False(t, ok)
	assert.Equal(t, StatusIdle, session.Ledger().Trades(1).Status)
}
