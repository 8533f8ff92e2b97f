// Package guard decides what a navigation layer should do with a
// session state. It is pure: no I/O, no role or permission checks, just
// the mapping from state to action. Consumers perform the redirect or
// the wait themselves.
package guard

import (
	"github.com/wasteworks/erpadmin"
)

// Decision is the action a consumer should take for a session state.
type Decision int

const (
	// Wait means the session has not settled. Hold the current view;
	// redirecting now would bounce users with valid credentials.
	Wait Decision = iota
	// RedirectLogin means the session settled anonymous. Send the user
	// to the login view.
	RedirectLogin
	// Admit means the session settled authenticated. Render the
	// protected view.
	Admit
)

func (d Decision) String() string {
	switch d {
	case Wait:
		return "wait"
	case RedirectLogin:
		return "redirect-login"
	case Admit:
		return "admit"
	default:
		return "unknown"
	}
}

// Decide maps a session state to its navigation action.
func Decide(state erpadmin.State) Decision {
	switch state.(type) {
	case erpadmin.Authenticated:
		return Admit
	case erpadmin.Anonymous:
		return RedirectLogin
	default:
		return Wait
	}
}
