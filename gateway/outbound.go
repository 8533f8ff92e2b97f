package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Outbounds lists outbound shipments filtered by params.
func (c *Client) Outbounds(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/outbound", params)
}

// OutboundByID returns a single outbound shipment.
func (c *Client) OutboundByID(ctx context.Context, id string) (json.RawMessage, error) {
	return c.getJSON(ctx, fmt.Sprintf("/outbound/%s", id), nil)
}

func (c *Client) CreateOutbound(ctx context.Context, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, "/outbound", data)
}

// DispatchOutbound confirms the shipment has left the warehouse.
func (c *Client) DispatchOutbound(ctx context.Context, id string) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/outbound/%s/dispatch", id), nil)
}

// CompleteDelivery records delivery confirmation details.
func (c *Client) CompleteDelivery(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/outbound/%s/complete", id), data)
}
