package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Jobs lists collection jobs filtered by params.
func (c *Client) Jobs(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/jobs", params)
}

// JobByID returns a single job.
func (c *Client) JobByID(ctx context.Context, id string) (json.RawMessage, error) {
	return c.getJSON(ctx, fmt.Sprintf("/jobs/%s", id), nil)
}

func (c *Client) CreateJob(ctx context.Context, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, "/jobs", data)
}

func (c *Client) UpdateJob(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.putJSON(ctx, fmt.Sprintf("/jobs/%s", id), data)
}

// UpdateJobStatus transitions a job's workflow status.
func (c *Client) UpdateJobStatus(ctx context.Context, id, status string) (json.RawMessage, error) {
	return c.putJSON(ctx, fmt.Sprintf("/jobs/%s/status", id), map[string]string{"status": status})
}

func (c *Client) DeleteJob(ctx context.Context, id string) (json.RawMessage, error) {
	return c.deleteJSON(ctx, fmt.Sprintf("/jobs/%s", id))
}
