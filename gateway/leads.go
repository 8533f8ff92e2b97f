package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Leads lists leads filtered by params.
func (c *Client) Leads(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/leads", params)
}

// LeadByID returns a single lead.
func (c *Client) LeadByID(ctx context.Context, id string) (json.RawMessage, error) {
	return c.getJSON(ctx, fmt.Sprintf("/leads/%s", id), nil)
}

func (c *Client) CreateLead(ctx context.Context, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, "/leads", data)
}

func (c *Client) UpdateLead(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.putJSON(ctx, fmt.Sprintf("/leads/%s", id), data)
}

// QualifyLead marks a lead as sales-qualified.
func (c *Client) QualifyLead(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/leads/%s/qualify", id), data)
}

// DisqualifyLead removes a lead from the pipeline with a reason.
func (c *Client) DisqualifyLead(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/leads/%s/disqualify", id), data)
}

// ConvertLead converts a qualified lead into a client and deal.
func (c *Client) ConvertLead(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/leads/%s/convert", id), data)
}

func (c *Client) DeleteLead(ctx context.Context, id string) (json.RawMessage, error) {
	return c.deleteJSON(ctx, fmt.Sprintf("/leads/%s", id))
}
