package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Products lists products filtered by params.
func (c *Client) Products(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/products", params)
}

// ProductByID returns a single product.
func (c *Client) ProductByID(ctx context.Context, id string) (json.RawMessage, error) {
	return c.getJSON(ctx, fmt.Sprintf("/products/%s", id), nil)
}

func (c *Client) CreateProduct(ctx context.Context, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, "/products", data)
}

func (c *Client) UpdateProduct(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.putJSON(ctx, fmt.Sprintf("/products/%s", id), data)
}

func (c *Client) ApproveProduct(ctx context.Context, id string) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/products/%s/approve", id), nil)
}

func (c *Client) DeactivateProduct(ctx context.Context, id string) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/products/%s/deactivate", id), nil)
}

func (c *Client) ActivateProduct(ctx context.Context, id string) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/products/%s/activate", id), nil)
}

func (c *Client) DeleteProduct(ctx context.Context, id string) (json.RawMessage, error) {
	return c.deleteJSON(ctx, fmt.Sprintf("/products/%s", id))
}
