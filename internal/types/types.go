package types

import (
	"time"

	"fleetwatch/pkg/backend"
	"fleetwatch/pkg/fleet"
)

// Path parameters.

type BotPathReq struct {
	ID int64 `path:"id"`
}

type SymbolPathReq struct {
	Symbol string `path:"symbol"`
}

// CreateBotReq mirrors the engine's create payload; the console validates
// nothing beyond shape and forwards it as-is.
type CreateBotReq struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`

	LimitBalanceUSDT float64 `json:"saldo_usdt_limit"`
	TradeValueUSDT   float64 `json:"valor_de_trade_usdt"`

	StopLossPercent float64 `json:"stop_loss_percent"`
	SellOnStopLoss  bool    `json:"vender_stop_loss,optional"`
	BuyPercent      float64 `json:"porcentagem_compra"`
	SellPercent     float64 `json:"porcentagem_venda"`

	BuyOnStart          bool `json:"comprar_ao_iniciar,optional"`
	UseMarketBuySignal  bool `json:"compra_mercado,optional"`
	UseMarketSellSignal bool `json:"venda_mercado,optional"`
}

// BotActionReq is a lifecycle action on one bot. Action is filled in by the
// handler from the route, not parsed from the request.
type BotActionReq struct {
	ID     int64  `path:"id"`
	Action string `json:"-"`
}

// CacheEntryView is the wire shape of one cache entry's lifecycle state.
// Error is the stringified fetch error, empty unless Status is "error".
type CacheEntryView struct {
	Status    string     `json:"status"`
	FetchedAt *time.Time `json:"fetched_at,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// BotView is one roster row: the engine resource plus everything the console
// derives for it.
type BotView struct {
	backend.Bot
	Active         bool                  `json:"active"`
	Stats          *backend.BotStats     `json:"stats,omitempty"`
	Recommendation *fleet.Recommendation `json:"recommendation,omitempty"`
}

type BotListResp struct {
	Bots []BotView `json:"bots"`
}

type IndicatorEntryResp struct {
	Symbol    string             `json:"symbol"`
	Entry     CacheEntryView     `json:"entry"`
	Indicator *backend.Indicator `json:"indicator,omitempty"`
}

type BotDetailResp struct {
	Bot       BotView            `json:"bot"`
	Indicator IndicatorEntryResp `json:"indicator"`
	Trades    TradesToggleResp   `json:"trades"`
}

// TradesToggleResp reports a bot's trade panel after a toggle (or as part of
// a detail view): whether it is shown, the cache lifecycle, and the rows with
// their realized P/L sum when loaded.
type TradesToggleResp struct {
	BotID       int64           `json:"bot_id"`
	Visible     bool            `json:"visible"`
	Entry       CacheEntryView  `json:"entry"`
	Trades      []backend.Trade `json:"trades,omitempty"`
	RealizedPnl float64         `json:"realized_pnl"`
}

type OverviewResp struct {
	GeneratedAt time.Time `json:"generated_at"`

	TotalBots  int `json:"total_bots"`
	ActiveBots int `json:"active_bots"`

	Summary       *backend.FleetSummary `json:"summary,omitempty"`
	SummaryEntry  CacheEntryView        `json:"summary_entry"`
	StatsEntry    CacheEntryView        `json:"stats_entry"`
	Health        *backend.SystemHealth `json:"health,omitempty"`
	HealthError   string                `json:"health_error,omitempty"`
	SystemRunning *bool                 `json:"system_running,omitempty"`
}

type RefreshResp struct {
	Bots       int `json:"bots"`
	ActiveBots int `json:"active_bots"`
	Symbols    int `json:"symbols"`
}

type MutateBotResp struct {
	Bot backend.Bot `json:"bot"`
}

type SystemResp struct {
	Health *backend.SystemHealth `json:"health,omitempty"`
	State  *backend.SystemState  `json:"state,omitempty"`
}

type ToggleSystemResp struct {
	State backend.SystemState `json:"state"`
}

// ToBotCreate converts the request payload into the client's wire type.
func (r CreateBotReq) ToBotCreate() backend.BotCreate {
	return backend.BotCreate{
		Name:                r.Name,
		Symbol:              r.Symbol,
		LimitBalanceUSDT:    r.LimitBalanceUSDT,
		TradeValueUSDT:      r.TradeValueUSDT,
		StopLossPercent:     r.StopLossPercent,
		SellOnStopLoss:      r.SellOnStopLoss,
		BuyPercent:          r.BuyPercent,
		SellPercent:         r.SellPercent,
		BuyOnStart:          r.BuyOnStart,
		UseMarketBuySignal:  r.UseMarketBuySignal,
		UseMarketSellSignal: r.UseMarketSellSignal,
	}
}
