package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Users lists tenant user accounts filtered by params.
func (c *Client) Users(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/users", params)
}

// UserByID returns a single user account.
func (c *Client) UserByID(ctx context.Context, id string) (json.RawMessage, error) {
	return c.getJSON(ctx, fmt.Sprintf("/users/%s", id), nil)
}

func (c *Client) CreateUser(ctx context.Context, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, "/users", data)
}

func (c *Client) UpdateUser(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.putJSON(ctx, fmt.Sprintf("/users/%s", id), data)
}

func (c *Client) DeleteUser(ctx context.Context, id string) (json.RawMessage, error) {
	return c.deleteJSON(ctx, fmt.Sprintf("/users/%s", id))
}
