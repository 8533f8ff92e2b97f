package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cccteam/ccc/accesstypes"
)

// Roles lists tenant roles filtered by params.
func (c *Client) Roles(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/roles", params)
}

// RoleByID returns a single role.
func (c *Client) RoleByID(ctx context.Context, id string) (json.RawMessage, error) {
	return c.getJSON(ctx, fmt.Sprintf("/roles/%s", id), nil)
}

func (c *Client) CreateRole(ctx context.Context, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, "/roles", data)
}

func (c *Client) UpdateRole(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.putJSON(ctx, fmt.Sprintf("/roles/%s", id), data)
}

func (c *Client) DeleteRole(ctx context.Context, id string) (json.RawMessage, error) {
	return c.deleteJSON(ctx, fmt.Sprintf("/roles/%s", id))
}

// AllPermissions returns every grantable permission code.
func (c *Client) AllPermissions(ctx context.Context) ([]accesstypes.Permission, error) {
	var perms []accesstypes.Permission
	if err := c.do(ctx, http.MethodGet, "/roles/permissions/all", nil, nil, &perms); err != nil {
		return nil, err
	}

	return perms, nil
}

// AssignPermissions replaces the permission set granted to a role.
func (c *Client) AssignPermissions(ctx context.Context, id string, permissions []accesstypes.Permission) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/roles/%s/permissions", id), map[string]any{"permissions": permissions})
}
