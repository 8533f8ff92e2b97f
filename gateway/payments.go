package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Payments lists payments filtered by params.
func (c *Client) Payments(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/payments", params)
}

// PaymentByID returns a single payment.
func (c *Client) PaymentByID(ctx context.Context, id string) (json.RawMessage, error) {
	return c.getJSON(ctx, fmt.Sprintf("/payments/%s", id), nil)
}

func (c *Client) CreatePayment(ctx context.Context, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, "/payments", data)
}

// UpdateChequeStatus transitions a cheque (cleared, bounced, etc).
func (c *Client) UpdateChequeStatus(ctx context.Context, chequeID string, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/payments/cheques/%s/status", chequeID), data)
}

// PostDatedCheques lists cheques awaiting their value date.
func (c *Client) PostDatedCheques(ctx context.Context) (json.RawMessage, error) {
	return c.getJSON(ctx, "/payments/cheques/postdated", nil)
}

func (c *Client) DeletePayment(ctx context.Context, id string) (json.RawMessage, error) {
	return c.deleteJSON(ctx, fmt.Sprintf("/payments/%s", id))
}
