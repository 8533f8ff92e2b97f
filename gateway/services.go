package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Services lists service offerings filtered by params.
func (c *Client) Services(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/services", params)
}

// ServiceByID returns a single service offering.
func (c *Client) ServiceByID(ctx context.Context, id string) (json.RawMessage, error) {
	return c.getJSON(ctx, fmt.Sprintf("/services/%s", id), nil)
}

func (c *Client) CreateService(ctx context.Context, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, "/services", data)
}

func (c *Client) UpdateService(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.putJSON(ctx, fmt.Sprintf("/services/%s", id), data)
}

func (c *Client) ApproveService(ctx context.Context, id string) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/services/%s/approve", id), nil)
}

func (c *Client) DeactivateService(ctx context.Context, id string) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/services/%s/deactivate", id), nil)
}

func (c *Client) ActivateService(ctx context.Context, id string) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/services/%s/activate", id), nil)
}

func (c *Client) DeleteService(ctx context.Context, id string) (json.RawMessage, error) {
	return c.deleteJSON(ctx, fmt.Sprintf("/services/%s", id))
}
