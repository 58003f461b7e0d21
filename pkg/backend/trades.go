package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// BotTrades returns a bot's trade history in the order the engine stored it.
// The list is not re-sorted client side.
func (c *Client) BotTrades(ctx context.Context, botID int64) ([]Trade, error) {
	var trades []Trade
	if err := c.get(ctx, fmt.Sprintf("/bots/%d/trades", botID), nil, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// RecentTrades returns the latest trades across all bots, optionally
// filtered by bot and symbol.
func (c *Client) RecentTrades(ctx context.Context, q RecentTradesQuery) ([]Trade, error) {
	query := url.Values{}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.BotID != nil {
		query.Set("bot_id", strconv.FormatInt(*q.BotID, 10))
	}
	if symbol := NormalizeSymbol(q.Symbol); symbol != "" {
		query.Set("symbol", symbol)
	}

	var trades []Trade
	if err := c.get(ctx, "/trades/recent", query, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}
