package backend

import (
	"context"
	"fmt"
)

// ListBots returns every registered bot in the engine's insertion order.
func (c *Client) ListBots(ctx context.Context) ([]Bot, error) {
	var bots []Bot
	if err := c.get(ctx, "/bots/", nil, &bots); err != nil {
		return nil, err
	}
	return bots, nil
}

// CreateBot registers a new bot and returns the stored resource.
func (c *Client) CreateBot(ctx context.Context, payload BotCreate) (*Bot, error) {
	var bot Bot
	if err := c.post(ctx, "/bots/", payload, &bot); err != nil {
		return nil, err
	}
	return &bot, nil
}

// StartBot switches a bot online. Returns the updated resource.
func (c *Client) StartBot(ctx context.Context, id int64) (*Bot, error) {
	return c.botAction(ctx, id, "start")
}

// StopBot switches a bot offline.
func (c *Client) StopBot(ctx context.Context, id int64) (*Bot, error) {
	return c.botAction(ctx, id, "stop")
}

// BlockBot marks a bot as blocked; a blocked bot cannot go online.
func (c *Client) BlockBot(ctx context.Context, id int64) (*Bot, error) {
	return c.botAction(ctx, id, "block")
}

// UnblockBot clears the blocked flag.
func (c *Client) UnblockBot(ctx context.Context, id int64) (*Bot, error) {
	return c.botAction(ctx, id, "unblock")
}

// CloseBotPosition liquidates the bot's open position at market price.
func (c *Client) CloseBotPosition(ctx context.Context, id int64) (*Bot, error) {
	return c.botAction(ctx, id, "close_position")
}

// DeleteBot removes a bot and all related records.
func (c *Client) DeleteBot(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/bots/%d", id))
}

// StartAllBots switches every unblocked bot online.
func (c *Client) StartAllBots(ctx context.Context) error {
	return c.post(ctx, "/bots/actions/start_all", nil, nil)
}

// StopAllBots switches every bot offline.
func (c *Client) StopAllBots(ctx context.Context) error {
	return c.post(ctx, "/bots/actions/stop_all", nil, nil)
}

func (c *Client) botAction(ctx context.Context, id int64, action string) (*Bot, error) {
	var bot Bot
	if err := c.post(ctx, fmt.Sprintf("/bots/%d/%s", id, action), nil, &bot); err != nil {
		return nil, err
	}
	return &bot, nil
}
