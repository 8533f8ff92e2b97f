package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Vehicles lists fleet vehicles filtered by params.
func (c *Client) Vehicles(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/vehicles", params)
}

// VehicleByID returns a single vehicle.
func (c *Client) VehicleByID(ctx context.Context, id string) (json.RawMessage, error) {
	return c.getJSON(ctx, fmt.Sprintf("/vehicles/%s", id), nil)
}

func (c *Client) CreateVehicle(ctx context.Context, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, "/vehicles", data)
}

func (c *Client) UpdateVehicle(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.putJSON(ctx, fmt.Sprintf("/vehicles/%s", id), data)
}

// UpdateVehicleStatus transitions a vehicle (in service, maintenance, retired).
func (c *Client) UpdateVehicleStatus(ctx context.Context, id, status string) (json.RawMessage, error) {
	return c.putJSON(ctx, fmt.Sprintf("/vehicles/%s/status", id), map[string]string{"status": status})
}

// AddFuelLog records a refuelling against a vehicle.
func (c *Client) AddFuelLog(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/vehicles/%s/fuel-log", id), data)
}

// AddMaintenanceLog records a maintenance event against a vehicle.
func (c *Client) AddMaintenanceLog(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/vehicles/%s/maintenance-log", id), data)
}

func (c *Client) DeleteVehicle(ctx context.Context, id string) (json.RawMessage, error) {
	return c.deleteJSON(ctx, fmt.Sprintf("/vehicles/%s", id))
}
