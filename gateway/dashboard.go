package gateway

import (
	"context"
	"encoding/json"
	"net/url"
)

// DashboardOverview returns the headline widgets for the landing page.
func (c *Client) DashboardOverview(ctx context.Context) (json.RawMessage, error) {
	return c.getJSON(ctx, "/dashboard/overview", nil)
}

// Analytics returns dashboard analytics filtered by params.
func (c *Client) Analytics(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/dashboard/analytics", params)
}

// SalesTrends returns the sales trend series.
func (c *Client) SalesTrends(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/dashboard/sales-trends", params)
}

// MaterialTypeBreakdown returns tonnage grouped by material type.
func (c *Client) MaterialTypeBreakdown(ctx context.Context) (json.RawMessage, error) {
	return c.getJSON(ctx, "/dashboard/material-breakdown", nil)
}

// TopClients returns the highest-volume clients.
func (c *Client) TopClients(ctx context.Context) (json.RawMessage, error) {
	return c.getJSON(ctx, "/dashboard/top-clients", nil)
}

// RecentActivities returns the activity feed.
func (c *Client) RecentActivities(ctx context.Context) (json.RawMessage, error) {
	return c.getJSON(ctx, "/dashboard/recent-activities", nil)
}
