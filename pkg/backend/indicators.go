package backend

import "context"

// LatestIndicator fetches the most recent indicator snapshot for a symbol.
// The symbol is normalized before hitting the wire. A 404 from the engine
// means no indicator history exists yet; callers use IsNotFound to convert
// that into an empty snapshot instead of an error.
func (c *Client) LatestIndicator(ctx context.Context, symbol string) (*Indicator, error) {
	symbol = NormalizeSymbol(symbol)
	var ind Indicator
	if err := c.get(ctx, "/indicators/latest/"+symbol, nil, &ind); err != nil {
		return nil, err
	}
	return &ind, nil
}
