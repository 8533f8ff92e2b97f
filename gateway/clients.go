package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Clients lists clients filtered by params.
func (c *Client) Clients(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/clients", params)
}

// ClientByID returns a single client.
func (c *Client) ClientByID(ctx context.Context, id string) (json.RawMessage, error) {
	return c.getJSON(ctx, fmt.Sprintf("/clients/%s", id), nil)
}

func (c *Client) CreateClient(ctx context.Context, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, "/clients", data)
}

func (c *Client) UpdateClient(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.putJSON(ctx, fmt.Sprintf("/clients/%s", id), data)
}

// ApproveClient moves a pending client into the active workflow.
func (c *Client) ApproveClient(ctx context.Context, id string) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/clients/%s/approve", id), nil)
}

func (c *Client) DeactivateClient(ctx context.Context, id string) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/clients/%s/deactivate", id), nil)
}

func (c *Client) ActivateClient(ctx context.Context, id string) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/clients/%s/activate", id), nil)
}

func (c *Client) DeleteClient(ctx context.Context, id string) (json.RawMessage, error) {
	return c.deleteJSON(ctx, fmt.Sprintf("/clients/%s", id))
}

// ClientStatistics returns volume and revenue aggregates for one client.
func (c *Client) ClientStatistics(ctx context.Context, id string) (json.RawMessage, error) {
	return c.getJSON(ctx, fmt.Sprintf("/clients/%s/statistics", id), nil)
}
