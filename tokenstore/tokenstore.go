// Package tokenstore implements persistence for the bearer token pair
// issued by the ERP backend. There are implementations backed by the
// filesystem and by process memory.
package tokenstore

// Fixed keys the pair is stored under, matching the names used by the
// backend's auth payloads.
const (
	keyAccessToken  = "accessToken"
	keyRefreshToken = "refreshToken"
)

// Pair holds the opaque bearer tokens for a session. Tokens are used
// verbatim until replaced or cleared; there is no rotation or refresh
// flow.
type Pair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Store defines an interface for managing token pair storage.
type Store interface {
	// Get returns the stored pair. The second return reports whether an
	// access token is present.
	Get() (Pair, bool)
	// Set overwrites both tokens unconditionally.
	Set(pair Pair) error
	// Clear removes both tokens. Clearing an empty store is not an error.
	Clear() error
}
