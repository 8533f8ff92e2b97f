package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Inventory returns current stock levels filtered by params.
func (c *Client) Inventory(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/inventory", params)
}

// Lots lists inventory lots.
func (c *Client) Lots(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/inventory/lots", params)
}

// LotByID returns a single lot.
func (c *Client) LotByID(ctx context.Context, id string) (json.RawMessage, error) {
	return c.getJSON(ctx, fmt.Sprintf("/inventory/lots/%s", id), nil)
}

func (c *Client) CreateLot(ctx context.Context, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, "/inventory/lots", data)
}

func (c *Client) UpdateLot(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.putJSON(ctx, fmt.Sprintf("/inventory/lots/%s", id), data)
}

// AdjustLotQuantity records a manual quantity adjustment against a lot.
func (c *Client) AdjustLotQuantity(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/inventory/lots/%s/adjust", id), data)
}

// CloseLot closes a lot to further movements.
func (c *Client) CloseLot(ctx context.Context, id string) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/inventory/lots/%s/close", id), nil)
}

// StockMovements lists ledger movements filtered by params.
func (c *Client) StockMovements(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/inventory/movements", params)
}

// InventoryValuation returns the valuation report for current stock.
func (c *Client) InventoryValuation(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/inventory/valuation", params)
}
