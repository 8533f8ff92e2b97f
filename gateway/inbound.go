package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// GRNs lists goods received notes filtered by params.
func (c *Client) GRNs(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/inbound/grn", params)
}

// GRNByID returns a single goods received note.
func (c *Client) GRNByID(ctx context.Context, id string) (json.RawMessage, error) {
	return c.getJSON(ctx, fmt.Sprintf("/inbound/grn/%s", id), nil)
}

func (c *Client) CreateGRN(ctx context.Context, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, "/inbound/grn", data)
}

// ApproveGRN posts the note's quantities into inventory.
func (c *Client) ApproveGRN(ctx context.Context, id string) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/inbound/grn/%s/approve", id), nil)
}

// RejectGRN rejects the note with a reason.
func (c *Client) RejectGRN(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/inbound/grn/%s/reject", id), data)
}
