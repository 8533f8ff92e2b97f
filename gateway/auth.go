package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cccteam/ccc/accesstypes"
	"github.com/go-playground/errors/v5"
	"github.com/wasteworks/erpadmin/tokenstore"
)

// RoleSuperAdmin is the role sentinel that bypasses all permission
// checks.
const RoleSuperAdmin accesstypes.Role = "super_admin"

// User is the authenticated account as returned by the auth endpoints.
type User struct {
	ID     string           `json:"id"`
	Email  string           `json:"email"`
	Name   string           `json:"name"`
	Role   accesstypes.Role `json:"role"`
	Status string           `json:"status,omitempty"`
}

// Tenant is the organizational unit scoping data visibility. Opaque to
// this client beyond display.
type Tenant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Plan string `json:"plan,omitempty"`
}

// AuthData is the payload of a successful login or registration.
type AuthData struct {
	AccessToken  string                   `json:"accessToken"`
	RefreshToken string                   `json:"refreshToken"`
	User         User                     `json:"user"`
	Tenant       *Tenant                  `json:"tenant"`
	Permissions  []accesstypes.Permission `json:"permissions"`
}

// CurrentUser is the payload of GET /auth/me.
type CurrentUser struct {
	User        User                     `json:"user"`
	Tenant      *Tenant                  `json:"tenant"`
	Permissions []accesstypes.Permission `json:"permissions"`
}

// Credentials are the login inputs.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest carries a password change for the current user.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// Login authenticates against POST /auth/login. When the payload carries
// a token pair it is written to the store before returning; holding the
// tokens is a side effect of the response shape, not a separate call.
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthData, error) {
	return c.authenticate(ctx, "/auth/login", creds)
}

// Register creates an account and tenant via POST /auth/register. The
// registration payload is backend-defined and passed through verbatim.
func (c *Client) Register(ctx context.Context, payload any) (*AuthData, error) {
	return c.authenticate(ctx, "/auth/register", payload)
}

func (c *Client) authenticate(ctx context.Context, path string, payload any) (*AuthData, error) {
	data := &AuthData{}
	if err := c.do(ctx, http.MethodPost, path, nil, jsonBody{v: payload}, data); err != nil {
		return nil, err
	}

	if data.AccessToken != "" {
		pair := tokenstore.Pair{AccessToken: data.AccessToken, RefreshToken: data.RefreshToken}
		if err := c.tokens.Set(pair); err != nil {
			return nil, errors.Wrap(err, "tokenstore.Store.Set()")
		}
	}

	return data, nil
}

// Logout invalidates the session via POST /auth/logout. The store is
// cleared whether or not the server call succeeds.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)

	if cerr := c.tokens.Clear(); cerr != nil && err == nil {
		err = errors.Wrap(cerr, "tokenstore.Store.Clear()")
	}

	return err
}

// CurrentUser fetches the session identity from GET /auth/me. Some
// backend versions return the user fields directly under data rather
// than nested, so an empty nested user falls back to decoding data as
// the user itself.
func (c *Client) CurrentUser(ctx context.Context) (*CurrentUser, error) {
	var data json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &data); err != nil {
		return nil, err
	}

	cu := &CurrentUser{}
	if err := json.Unmarshal(data, cu); err != nil {
		return nil, errors.Wrap(err, "json.Unmarshal()")
	}

	if cu.User.ID == "" {
		if err := json.Unmarshal(data, &cu.User); err != nil {
			return nil, errors.Wrap(err, "json.Unmarshal()")
		}
	}

	return cu, nil
}

// ChangePassword updates the current user's password via
// PUT /auth/change-password.
func (c *Client) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	return c.do(ctx, http.MethodPut, "/auth/change-password", nil, jsonBody{v: req}, nil)
}
