package erpadmin

import (
	"context"

	"github.com/wasteworks/erpadmin/gateway"
)

// AuthClient is the slice of the gateway the session manager drives.
type AuthClient interface {
	Login(ctx context.Context, creds gateway.Credentials) (*gateway.AuthData, error)
	Register(ctx context.Context, payload any) (*gateway.AuthData, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*gateway.CurrentUser, error)
}

var _ AuthClient = (*gateway.Client)(nil)
