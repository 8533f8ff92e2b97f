package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Deals lists deals filtered by params.
func (c *Client) Deals(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/deals", params)
}

// DealByID returns a single deal.
func (c *Client) DealByID(ctx context.Context, id string) (json.RawMessage, error) {
	return c.getJSON(ctx, fmt.Sprintf("/deals/%s", id), nil)
}

func (c *Client) CreateDeal(ctx context.Context, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, "/deals", data)
}

func (c *Client) UpdateDeal(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.putJSON(ctx, fmt.Sprintf("/deals/%s", id), data)
}

// MoveDealStage advances or retreats a deal along the pipeline.
func (c *Client) MoveDealStage(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/deals/%s/move-stage", id), data)
}

// FinalizeDeal closes a deal as won, fixing its commercial terms.
func (c *Client) FinalizeDeal(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/deals/%s/finalize", id), data)
}

func (c *Client) DeleteDeal(ctx context.Context, id string) (json.RawMessage, error) {
	return c.deleteJSON(ctx, fmt.Sprintf("/deals/%s", id))
}

// DealStatistics returns pipeline aggregates.
func (c *Client) DealStatistics(ctx context.Context) (json.RawMessage, error) {
	return c.getJSON(ctx, "/deals/statistics", nil)
}
