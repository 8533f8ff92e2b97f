package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Vendors lists vendors filtered by params.
func (c *Client) Vendors(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/vendors", params)
}

// VendorByID returns a single vendor.
func (c *Client) VendorByID(ctx context.Context, id string) (json.RawMessage, error) {
	return c.getJSON(ctx, fmt.Sprintf("/vendors/%s", id), nil)
}

func (c *Client) CreateVendor(ctx context.Context, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, "/vendors", data)
}

func (c *Client) UpdateVendor(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.putJSON(ctx, fmt.Sprintf("/vendors/%s", id), data)
}

func (c *Client) ApproveVendor(ctx context.Context, id string) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/vendors/%s/approve", id), nil)
}

func (c *Client) DeactivateVendor(ctx context.Context, id string) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/vendors/%s/deactivate", id), nil)
}

func (c *Client) ActivateVendor(ctx context.Context, id string) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/vendors/%s/activate", id), nil)
}

func (c *Client) DeleteVendor(ctx context.Context, id string) (json.RawMessage, error) {
	return c.deleteJSON(ctx, fmt.Sprintf("/vendors/%s", id))
}
