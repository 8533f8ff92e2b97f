package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Invoices lists invoices filtered by params.
func (c *Client) Invoices(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/invoices", params)
}

// InvoiceByID returns a single invoice.
func (c *Client) InvoiceByID(ctx context.Context, id string) (json.RawMessage, error) {
	return c.getJSON(ctx, fmt.Sprintf("/invoices/%s", id), nil)
}

func (c *Client) CreateInvoice(ctx context.Context, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, "/invoices", data)
}

func (c *Client) UpdateInvoice(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.putJSON(ctx, fmt.Sprintf("/invoices/%s", id), data)
}

// ApproveInvoice approves a draft invoice for issue.
func (c *Client) ApproveInvoice(ctx context.Context, id string) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/invoices/%s/approve", id), nil)
}

// RecordPayment records a payment against an invoice.
func (c *Client) RecordPayment(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/invoices/%s/payment", id), data)
}

// CancelInvoice voids an issued invoice.
func (c *Client) CancelInvoice(ctx context.Context, id string) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/invoices/%s/cancel", id), nil)
}

func (c *Client) DeleteInvoice(ctx context.Context, id string) (json.RawMessage, error) {
	return c.deleteJSON(ctx, fmt.Sprintf("/invoices/%s", id))
}

// InvoiceStatistics returns invoicing aggregates filtered by params.
func (c *Client) InvoiceStatistics(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/invoices/statistics", params)
}
