package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Commissions lists sales commissions filtered by params.
func (c *Client) Commissions(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/commissions", params)
}

// CommissionByID returns a single commission.
func (c *Client) CommissionByID(ctx context.Context, id string) (json.RawMessage, error) {
	return c.getJSON(ctx, fmt.Sprintf("/commissions/%s", id), nil)
}

// CalculateCommission previews a commission calculation server-side.
func (c *Client) CalculateCommission(ctx context.Context, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, "/commissions/calculate", data)
}

func (c *Client) CreateCommission(ctx context.Context, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, "/commissions", data)
}

func (c *Client) ApproveCommission(ctx context.Context, id string) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/commissions/%s/approve", id), nil)
}

// PayCommission settles an approved commission.
func (c *Client) PayCommission(ctx context.Context, id string) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/commissions/%s/pay", id), nil)
}

// ReverseCommission reverses a paid commission with a reason.
func (c *Client) ReverseCommission(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/commissions/%s/reverse", id), data)
}

// CommissionSummary returns per-agent commission aggregates.
func (c *Client) CommissionSummary(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/commissions/summary", params)
}
