package backend

import "context"

// StatsByBot returns the engine's per-bot performance rollup.
func (c *Client) StatsByBot(ctx context.Context) ([]BotStats, error) {
	var stats []BotStats
	if err := c.get(ctx, "/stats/by_bot", nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// StatsSummary returns fleet-wide aggregate counters.
func (c *Client) StatsSummary(ctx context.Context) (*FleetSummary, error) {
	var summary FleetSummary
	if err := c.get(ctx, "/stats/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
