package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Employees lists employees filtered by params.
func (c *Client) Employees(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/employees", params)
}

// EmployeeByID returns a single employee.
func (c *Client) EmployeeByID(ctx context.Context, id string) (json.RawMessage, error) {
	return c.getJSON(ctx, fmt.Sprintf("/employees/%s", id), nil)
}

func (c *Client) CreateEmployee(ctx context.Context, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, "/employees", data)
}

func (c *Client) UpdateEmployee(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.putJSON(ctx, fmt.Sprintf("/employees/%s", id), data)
}

// TerminateEmployee ends an employment record with termination details.
func (c *Client) TerminateEmployee(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/employees/%s/terminate", id), data)
}

func (c *Client) DeleteEmployee(ctx context.Context, id string) (json.RawMessage, error) {
	return c.deleteJSON(ctx, fmt.Sprintf("/employees/%s", id))
}
