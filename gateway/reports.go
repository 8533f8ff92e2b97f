package gateway

import (
	"context"
	"encoding/json"
	"net/url"
)

func (c *Client) DealReport(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/reports/deals", params)
}

func (c *Client) InvoiceReport(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/reports/invoices", params)
}

func (c *Client) InventoryReport(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/reports/inventory", params)
}

func (c *Client) SalesReport(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/reports/sales", params)
}

func (c *Client) VATReport(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/reports/vat", params)
}

func (c *Client) CustomerAgeingReport(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/reports/customer-ageing", params)
}

func (c *Client) CommissionReport(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/reports/commissions", params)
}

func (c *Client) ExpenseReport(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/reports/expenses", params)
}
