package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Warehouses lists warehouses filtered by params.
func (c *Client) Warehouses(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/warehouses", params)
}

// WarehouseByID returns a single warehouse.
func (c *Client) WarehouseByID(ctx context.Context, id string) (json.RawMessage, error) {
	return c.getJSON(ctx, fmt.Sprintf("/warehouses/%s", id), nil)
}

func (c *Client) CreateWarehouse(ctx context.Context, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, "/warehouses", data)
}

func (c *Client) UpdateWarehouse(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.putJSON(ctx, fmt.Sprintf("/warehouses/%s", id), data)
}

func (c *Client) DeactivateWarehouse(ctx context.Context, id string) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/warehouses/%s/deactivate", id), nil)
}

func (c *Client) ActivateWarehouse(ctx context.Context, id string) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/warehouses/%s/activate", id), nil)
}

func (c *Client) DeleteWarehouse(ctx context.Context, id string) (json.RawMessage, error) {
	return c.deleteJSON(ctx, fmt.Sprintf("/warehouses/%s", id))
}
