package backend

import "context"

// Health checks that the engine API is up and reports its mode.
func (c *Client) Health(ctx context.Context) (*SystemHealth, error) {
	var health SystemHealth
	if err := c.get(ctx, "/system/health", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// State returns the engine's global run toggle.
func (c *Client) State(ctx context.Context) (*SystemState, error) {
	var state SystemState
	if err := c.get(ctx, "/system/state", nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// ToggleSystem flips the engine's global run toggle and returns the new state.
func (c *Client) ToggleSystem(ctx context.Context) (*SystemState, error) {
	var state SystemState
	if err := c.post(ctx, "/system/state/toggle", nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// TestOrder validates an order against the exchange without placing it.
func (c *Client) TestOrder(ctx context.Context, payload OrderTestRequest) (*OrderTestResult, error) {
	payload.Symbol = NormalizeSymbol(payload.Symbol)
	var result OrderTestResult
	if err := c.post(ctx, "/binance/order/test", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PlaceOrder sends a real (or simulated, per engine mode) order.
func (c *Client) PlaceOrder(ctx context.Context, payload OrderTestRequest) (*OrderTestResult, error) {
	payload.Symbol = NormalizeSymbol(payload.Symbol)
	var result OrderTestResult
	if err := c.post(ctx, "/binance/order/place", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
