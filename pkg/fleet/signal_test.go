package fleet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetwatch/pkg/backend"
)

func boolPtr(v bool) *bool        { return &v }
func floatPtr(v float64) *float64 { return &v }
func stringPtr(v string) *string  { return &v }

func fullIndicator(buy, sell bool, rsi, hist float64, trend string) *backend.Indicator {
	return &backend.Indicator{
		Symbol:           "BTCUSDT",
		Close:            50000,
		RSI14:            floatPtr(rsi),
		MACDHist:         floatPtr(hist),
		TrendLabel:       stringPtr(trend),
		MarketSignalBuy:  boolPtr(buy),
		MarketSignalSell: boolPtr(sell),
	}
}

func TestSynthesize_NoIndicatorIsConservativeHold(t *testing.T) {
	bots := []backend.Bot{
		{},
		{HasOpenPosition: true},
		{HasOpenPosition: true, StopLossPercent: 20},
	}
	for _, bot := range bots {
		rec := Synthesize(bot, nil)
		assert.Equal(t, HoldPosition, rec.Code)
		assert.Equal(t, []string{"insufficient indicator data for this symbol"}, rec.Reasons)
	}
}

func TestSynthesize_BuySignalNoPositionEvaluatesEntry(t *testing.T) {
	bot := backend.Bot{ID: 1, HasOpenPosition: false}
	ind := fullIndicator(true, false, 25, 5, backend.TrendBullish)

	rec := Synthesize(bot, ind)
	assert.Equal(t, EvaluateEntry, rec.Code)
	require.Len(t, rec.Reasons, 5, "market signal, trend, RSI, momentum, position")
	assert.Contains(t, rec.Reasons[0], "COMPRA")
	assert.Contains(t, rec.Reasons[1], "bullish")
	assert.Contains(t, rec.Reasons[2], "oversold")
	assert.Contains(t, rec.Reasons[3], "weak momentum")
	assert.Contains(t, rec.Reasons[4], "no open position")
}

func TestSynthesize_SellSignalWithPositionEvaluatesExit(t *testing.T) {
	bot := backend.Bot{ID: 1, HasOpenPosition: true, StopLossPercent: 10, SellPercent: 4}
	ind := fullIndicator(false, true, 55, -30, backend.TrendBearish)

	rec := Synthesize(bot, ind)
	assert.Equal(t, EvaluateExit, rec.Code)
	assert.Contains(t, rec.Reasons[0], "VENDA")
	assert.Contains(t, rec.Reasons[3], "negative momentum")
	assert.Contains(t, rec.Reasons[4], "stop loss")
}

func TestSynthesize_OverboughtRSIWithPositionEvaluatesExit(t *testing.T) {
	bot := backend.Bot{ID: 1, HasOpenPosition: true}
	ind := fullIndicator(false, false, 75, 0, backend.TrendNeutral)

	rec := Synthesize(bot, ind)
	assert.Equal(t, EvaluateExit, rec.Code)
	assert.Contains(t, rec.Reasons[2], "overbought")
}

func TestSynthesize_AmbiguousSignalDegradesToNeutral(t *testing.T) {
	bot := backend.Bot{ID: 1, HasOpenPosition: false}
	ind := fullIndicator(true, true, 50, 0, backend.TrendNeutral)

	rec := Synthesize(bot, ind)
	assert.Equal(t, HoldPosition, rec.Code, "both flags set never biases entry or exit")
	assert.Contains(t, rec.Reasons[0], "neutral")
}

func TestSynthesize_SellSignalWithoutPositionHolds(t *testing.T) {
	bot := backend.Bot{ID: 1, HasOpenPosition: false}
	ind := fullIndicator(false, true, 50, 0, backend.TrendBearish)

	rec := Synthesize(bot, ind)
	assert.Equal(t, HoldPosition, rec.Code)
}

func TestSynthesize_BuySignalWithPositionHolds(t *testing.T) {
	bot := backend.Bot{ID: 1, HasOpenPosition: true}
	ind := fullIndicator(true, false, 50, 25, backend.TrendBullish)

	rec := Synthesize(bot, ind)
	assert.Equal(t, HoldPosition, rec.Code)
	assert.Contains(t, rec.Reasons[3], "positive momentum")
}

func TestSynthesize_MissingOptionalFields(t *testing.T) {
	bot := backend.Bot{ID: 1}
	ind := &backend.Indicator{Symbol: "NEWUSDT", Close: 1.23}

	rec := Synthesize(bot, ind)
	assert.Equal(t, HoldPosition, rec.Code)
	require.Len(t, rec.Reasons, 5)
	assert.Contains(t, rec.Reasons[0], "no market signal")
	assert.Equal(t, "trend unknown", rec.Reasons[1])
	assert.Equal(t, "RSI14 unavailable", rec.Reasons[2])
	assert.Equal(t, "MACD histogram unavailable", rec.Reasons[3])
}

func TestSynthesize_Deterministic(t *testing.T) {
	bot := backend.Bot{ID: 1, HasOpenPosition: true, StopLossPercent: 15, SellPercent: 3}
	ind := fullIndicator(false, true, 71, 42, backend.TrendBearish)

	first := Synthesize(bot, ind)
	for i := 0; i < 10; i++ {
		again := Synthesize(bot, ind)
		assert.Equal(t, first.Code, again.Code)
		assert.Equal(t, strings.Join(first.Reasons, "|"), strings.Join(again.Reasons, "|"))
	}
}
