package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// JournalEntries lists journal entries filtered by params.
func (c *Client) JournalEntries(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/accounting/journal-entries", params)
}

// JournalEntryByID returns a single journal entry.
func (c *Client) JournalEntryByID(ctx context.Context, id string) (json.RawMessage, error) {
	return c.getJSON(ctx, fmt.Sprintf("/accounting/journal-entries/%s", id), nil)
}

func (c *Client) CreateJournalEntry(ctx context.Context, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, "/accounting/journal-entries", data)
}

// Expenses lists expenses filtered by params.
func (c *Client) Expenses(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/accounting/expenses", params)
}

func (c *Client) CreateExpense(ctx context.Context, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, "/accounting/expenses", data)
}

func (c *Client) ApproveExpense(ctx context.Context, id string) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/accounting/expenses/%s/approve", id), nil)
}

// FixedAssets lists fixed assets filtered by params.
func (c *Client) FixedAssets(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/accounting/fixed-assets", params)
}

func (c *Client) CreateFixedAsset(ctx context.Context, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, "/accounting/fixed-assets", data)
}

// CalculateDepreciation runs a depreciation calculation server-side.
func (c *Client) CalculateDepreciation(ctx context.Context, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, "/accounting/depreciation/calculate", data)
}

func (c *Client) BankAccounts(ctx context.Context) (json.RawMessage, error) {
	return c.getJSON(ctx, "/accounting/bank-accounts", nil)
}

func (c *Client) CreateBankAccount(ctx context.Context, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, "/accounting/bank-accounts", data)
}
