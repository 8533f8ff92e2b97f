package erpadmin

import (
	"github.com/wasteworks/erpadmin/gateway"
)

// State is the session state. It is a sealed sum: exactly one of
// Unknown, Anonymous, or Authenticated, so a consumer can never observe
// a user without a settled session or vice versa.
type State interface {
	isState()
}

// Unknown is the state before hydration settles. Consumers should wait,
// not redirect.
type Unknown struct{}

// Anonymous is a settled session with no identity.
type Anonymous struct{}

// Authenticated is a settled session with a loaded identity.
type Authenticated struct {
	User        gateway.User
	Tenant      *gateway.Tenant
	Permissions PermissionSet
}

func (Unknown) isState()       {}
func (Anonymous) isState()     {}
func (Authenticated) isState() {}
