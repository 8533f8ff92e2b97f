package gateway

import (
	"context"
	"encoding/json"
	"fmt"
)

// Settings returns the tenant settings document.
func (c *Client) Settings(ctx context.Context) (json.RawMessage, error) {
	return c.getJSON(ctx, "/settings", nil)
}

func (c *Client) UpdateSettings(ctx context.Context, data any) (json.RawMessage, error) {
	return c.putJSON(ctx, "/settings", data)
}

// MaterialTypes lists the configured waste material types.
func (c *Client) MaterialTypes(ctx context.Context) (json.RawMessage, error) {
	return c.getJSON(ctx, "/settings/material-types", nil)
}

func (c *Client) CreateMaterialType(ctx context.Context, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, "/settings/material-types", data)
}

func (c *Client) UpdateMaterialType(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.putJSON(ctx, fmt.Sprintf("/settings/material-types/%s", id), data)
}

func (c *Client) Currencies(ctx context.Context) (json.RawMessage, error) {
	return c.getJSON(ctx, "/settings/currencies", nil)
}

func (c *Client) UpdateCurrency(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.putJSON(ctx, fmt.Sprintf("/settings/currencies/%s", id), data)
}

func (c *Client) Taxes(ctx context.Context) (json.RawMessage, error) {
	return c.getJSON(ctx, "/settings/taxes", nil)
}

func (c *Client) UpdateTax(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.putJSON(ctx, fmt.Sprintf("/settings/taxes/%s", id), data)
}

func (c *Client) PaymentModes(ctx context.Context) (json.RawMessage, error) {
	return c.getJSON(ctx, "/settings/payment-modes", nil)
}

func (c *Client) UpdatePaymentMode(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.putJSON(ctx, fmt.Sprintf("/settings/payment-modes/%s", id), data)
}

func (c *Client) ExpenseCategories(ctx context.Context) (json.RawMessage, error) {
	return c.getJSON(ctx, "/settings/expense-categories", nil)
}

func (c *Client) UpdateExpenseCategory(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.putJSON(ctx, fmt.Sprintf("/settings/expense-categories/%s", id), data)
}
