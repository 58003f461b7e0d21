package fleet

import (
	"fmt"

	"fleetwatch/pkg/backend"
)

// RecommendationCode classifies what the operator should look at next.
type RecommendationCode string

const (
	EvaluateEntry RecommendationCode = "evaluate_entry"
	HoldPosition  RecommendationCode = "hold_position"
	EvaluateExit  RecommendationCode = "evaluate_exit"
)

// Recommendation is a derived, human-readable reading of a bot's situation.
// It is recomputed on every render from whatever is cached and never stored.
type Recommendation struct {
	Code    RecommendationCode `json:"code"`
	Reasons []string           `json:"reasons"`
}

// Thresholds for the rule-of-thumb reading. Informational only; this is not
// trading advice and the engine trades on its own rules.
const (
	rsiOverbought    = 70.0
	rsiOversold      = 30.0
	weakMomentumBand = 20.0
)

const reasonNoIndicator = "insufficient indicator data for this symbol"

// Synthesize derives a recommendation from a bot's position state and its
// symbol's indicator snapshot. It is a pure function: no I/O, no clock, and
// identical inputs always produce identical output. A nil indicator (cache
// idle, loading, errored, or an empty snapshot) degrades to a conservative
// hold. Reason strings are appended in a fixed order: market signal, trend,
// RSI zone, momentum, position state.
func Synthesize(bot backend.Bot, ind *backend.Indicator) Recommendation {
	if ind == nil {
		return Recommendation{
			Code:    HoldPosition,
			Reasons: []string{reasonNoIndicator},
		}
	}

	reasons := make([]string, 0, 5)

	// Market signal with explicit tie-break: both flags set, or neither,
	// degrades to neutral instead of failing.
	buySignal := ind.MarketSignalBuy != nil && *ind.MarketSignalBuy
	sellSignal := ind.MarketSignalSell != nil && *ind.MarketSignalSell
	buyBias := buySignal && !sellSignal
	sellBias := sellSignal && !buySignal
	switch {
	case buyBias:
		reasons = append(reasons, "market signal COMPRA active (buy bias)")
	case sellBias:
		reasons = append(reasons, "market signal VENDA active (sell bias)")
	case buySignal && sellSignal:
		reasons = append(reasons, "market signal mixed (COMPRA and VENDA both set), treated as neutral")
	default:
		reasons = append(reasons, "no market signal, neutral")
	}

	reasons = append(reasons, trendReason(ind.TrendLabel))

	overbought := false
	switch {
	case ind.RSI14 == nil:
		reasons = append(reasons, "RSI14 unavailable")
	case *ind.RSI14 >= rsiOverbought:
		overbought = true
		reasons = append(reasons, fmt.Sprintf("RSI14 %.2f: overbought", *ind.RSI14))
	case *ind.RSI14 <= rsiOversold:
		reasons = append(reasons, fmt.Sprintf("RSI14 %.2f: oversold", *ind.RSI14))
	default:
		reasons = append(reasons, fmt.Sprintf("RSI14 %.2f: neutral zone", *ind.RSI14))
	}

	reasons = append(reasons, momentumReason(ind.MACDHist))

	if bot.HasOpenPosition {
		reasons = append(reasons, fmt.Sprintf(
			"open position held: review stop loss (%.2f%%) and take profit (%.2f%%) levels",
			bot.StopLossPercent, bot.SellPercent))
	} else {
		reasons = append(reasons, "no open position")
	}

	code := HoldPosition
	switch {
	case buyBias && !bot.HasOpenPosition:
		code = EvaluateEntry
	case (sellBias || overbought) && bot.HasOpenPosition:
		code = EvaluateExit
	}

	return Recommendation{Code: code, Reasons: reasons}
}

func trendReason(label *string) string {
	if label == nil {
		return "trend unknown"
	}
	switch *label {
	case backend.TrendBullish, backend.TrendBearish, backend.TrendNeutral:
		return "trend " + *label
	default:
		return "trend unknown"
	}
}

func momentumReason(hist *float64) string {
	if hist == nil {
		return "MACD histogram unavailable"
	}
	h := *hist
	switch {
	case h > -weakMomentumBand && h < weakMomentumBand:
		return fmt.Sprintf("MACD histogram %.2f: weak momentum", h)
	case h >= weakMomentumBand:
		return fmt.Sprintf("MACD histogram %.2f: positive momentum", h)
	default:
		return fmt.Sprintf("MACD histogram %.2f: negative momentum", h)
	}
}
