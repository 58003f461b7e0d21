package backend

import "time"

// BotStatus is the lifecycle state reported by the engine.
type BotStatus string

const (
	BotOnline  BotStatus = "online"
	BotOffline BotStatus = "offline"
)

// TradeSide labels the direction of an executed trade.
type TradeSide string

const (
	SideBuy  TradeSide = "BUY"
	SideSell TradeSide = "SELL"
)

// Trend labels emitted by the indicator pipeline.
const (
	TrendBullish = "bullish"
	TrendBearish = "bearish"
	TrendNeutral = "neutral"
)

// Bot mirrors the engine's bot resource. Fields that the engine only sets in
// certain states (for example last_buy_price before the first buy) are
// pointers so "absent" stays distinguishable from zero.
type Bot struct {
	ID      int64     `json:"id"`
	Name    string    `json:"name"`
	Symbol  string    `json:"symbol"`
	Status  BotStatus `json:"status"`
	Blocked bool      `json:"blocked"`

	LimitBalanceUSDT float64 `json:"saldo_usdt_limit"`
	FreeBalanceUSDT  float64 `json:"saldo_usdt_livre"`
	TradeValueUSDT   float64 `json:"valor_de_trade_usdt"`

	StopLossPercent float64 `json:"stop_loss_percent"`
	SellOnStopLoss  bool    `json:"vender_stop_loss"`
	BuyPercent      float64 `json:"porcentagem_compra"`
	SellPercent     float64 `json:"porcentagem_venda"`

	BuyOnStart          bool `json:"comprar_ao_iniciar"`
	UseMarketBuySignal  bool `json:"compra_mercado"`
	UseMarketSellSignal bool `json:"venda_mercado"`

	HasOpenPosition     bool     `json:"has_open_position"`
	QtyAsset            float64  `json:"qty_moeda"`
	LastBuyPrice        *float64 `json:"last_buy_price"`
	LastSellPrice       *float64 `json:"last_sell_price"`
	CycleReferencePrice *float64 `json:"valor_inicial"`

	CreatedAt time.Time  `json:"created_at"`
	StartedAt *time.Time `json:"started_at"`
}

// IsActive reports whether the bot is part of the operating fleet: powered on
// and not administratively blocked.
func (b Bot) IsActive() bool {
	return b.Status == BotOnline && !b.Blocked
}

// BotCreate is the payload accepted by the engine's create endpoint.
type BotCreate struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`

	LimitBalanceUSDT float64 `json:"saldo_usdt_limit"`
	TradeValueUSDT   float64 `json:"valor_de_trade_usdt"`

	StopLossPercent float64 `json:"stop_loss_percent"`
	SellOnStopLoss  bool    `json:"vender_stop_loss"`
	BuyPercent      float64 `json:"porcentagem_compra"`
	SellPercent     float64 `json:"porcentagem_venda"`

	BuyOnStart          bool `json:"comprar_ao_iniciar"`
	UseMarketBuySignal  bool `json:"compra_mercado"`
	UseMarketSellSignal bool `json:"venda_mercado"`
}

// Indicator is the most recent computed technical snapshot for one symbol.
// The indicator job may not have produced every value yet, so everything past
// the close price is optional.
type Indicator struct {
	ID       int64  `json:"id"`
	Symbol   string `json:"symbol"`
	Interval string `json:"interval"`

	OpenTime  time.Time `json:"open_time"`
	CloseTime time.Time `json:"close_time"`
	Close     float64   `json:"close"`

	EMA9  *float64 `json:"ema9"`
	EMA21 *float64 `json:"ema21"`
	RSI14 *float64 `json:"rsi14"`

	MACD       *float64 `json:"macd"`
	MACDSignal *float64 `json:"macd_signal"`
	MACDHist   *float64 `json:"macd_hist"`

	ADX        *float64 `json:"adx"`
	TrendScore *float64 `json:"trend_score"`
	TrendLabel *string  `json:"trend_label"`

	MarketSignalBuy  *bool `json:"market_signal_compra"`
	MarketSignalSell *bool `json:"market_signal_venda"`

	CreatedAt time.Time `json:"created_at"`
}

// Trade is one executed (or simulated) fill recorded by the engine.
// RealizedPnl is only present on SELL records.
type Trade struct {
	ID          int64     `json:"id"`
	BotID       int64     `json:"bot_id"`
	Symbol      string    `json:"symbol"`
	Side        TradeSide `json:"side"`
	Price       float64   `json:"price"`
	Qty         float64   `json:"qty"`
	QuoteQty    float64   `json:"quote_qty"`
	IsSimulated bool      `json:"is_simulated"`
	FeeAmount   *float64  `json:"fee_amount"`
	FeeAsset    *string   `json:"fee_asset"`
	RealizedPnl *float64  `json:"realized_pnl"`
	Info        *string   `json:"info"`
	CreatedAt   time.Time `json:"created_at"`
}

// BotStats is one row of the engine's per-bot performance report.
type BotStats struct {
	BotID         int64      `json:"bot_id"`
	BotName       string     `json:"bot_name"`
	Symbol        string     `json:"symbol"`
	NumTrades     int        `json:"num_trades"`
	NumBuys       int        `json:"num_buys"`
	NumSells      int        `json:"num_sells"`
	RealizedPnl   float64    `json:"realized_pnl"`
	TotalFeesUSDT float64    `json:"total_fees_usdt"`
	LastTradeAt   *time.Time `json:"last_trade_at"`
}

// FleetSummary aggregates counters across every registered bot.
type FleetSummary struct {
	TotalBots             int       `json:"total_bots"`
	TotalBotsOnline       int       `json:"total_bots_online"`
	TotalBotsBlocked      int       `json:"total_bots_blocked"`
	TotalBotsOpenPosition int       `json:"total_bots_with_open_position"`
	TotalFreeBalanceUSDT  float64   `json:"total_saldo_usdt_livre"`
	TotalRealizedPnl      float64   `json:"total_realized_pnl"`
	TotalFeesUSDT         float64   `json:"total_fees_usdt"`
	GeneratedAt           time.Time `json:"generated_at"`
}

// SystemHealth reports that the engine API is reachable and which mode it
// runs in (simulation or live).
type SystemHealth struct {
	Status  string `json:"status"`
	AppName string `json:"app_name"`
	AppMode string `json:"app_mode"`
}

// SystemState is the engine's global run toggle.
type SystemState struct {
	SystemRunning bool `json:"system_running"`
}

// OrderTestRequest is the payload for the engine's exchange order tester.
// Exactly one of Quantity (base asset) or QuoteOrderQty (USDT) must be set;
// Price is required for LIMIT orders.
type OrderTestRequest struct {
	Symbol        string    `json:"symbol"`
	Side          TradeSide `json:"side"`
	Type          string    `json:"type"`
	Quantity      *float64  `json:"quantity,omitempty"`
	QuoteOrderQty *float64  `json:"quoteOrderQty,omitempty"`
	Price         *float64  `json:"price,omitempty"`
	TimeInForce   *string   `json:"timeInForce,omitempty"`
}

// OrderTestResult echoes the engine's order test / placement response. The
// exchange payload is kept raw since it varies by order type and mode.
type OrderTestResult struct {
	OK            bool           `json:"ok"`
	Symbol        string         `json:"symbol"`
	Side          TradeSide      `json:"side"`
	Type          string         `json:"type"`
	Quantity      *float64       `json:"quantity"`
	QuoteOrderQty *float64       `json:"quoteOrderQty"`
	Price         *float64       `json:"price"`
	Raw           map[string]any `json:"result"`
}

// RecentTradesQuery filters the engine's recent-trades board.
type RecentTradesQuery struct {
	Limit  int
	BotID  *int64
	Symbol string
}
