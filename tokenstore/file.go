package tokenstore

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/go-playground/errors/v5"
	"github.com/gorilla/securecookie"
)

var _ Store = (*File)(nil)

// credentialsName is the securecookie codec name the sealed payload is
// bound to.
const credentialsName = "credentials"

// maxSealedLength raises the codec limit above the securecookie default,
// since backend-issued bearer tokens routinely exceed 4KB once sealed.
const maxSealedLength = 16 << 10

// File persists the token pair in a single file, sealed with a
// securecookie codec so credentials are not stored in the clear.
type File struct {
	path   string
	sealer *securecookie.SecureCookie

	mu sync.Mutex
}

// NewFile creates a Store persisting to path. The hash and block keys
// seal the payload; they must be stable across runs for a stored pair to
// remain readable.
func NewFile(path string, hashKey, blockKey []byte) *File {
	sealer := securecookie.New(hashKey, blockKey)
	sealer.MaxLength(maxSealedLength)

	return &File{
		path:   path,
		sealer: sealer,
	}
}

// Get implements Store. A missing file is an absent pair. A file that
// fails to unseal is also treated as absent, since its contents are
// unusable as credentials.
func (f *File) Get() (Pair, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := os.ReadFile(f.path)
	if err != nil {
		return Pair{}, false
	}

	vals := make(map[string]string)
	if err := f.sealer.Decode(credentialsName, string(raw), &vals); err != nil {
		return Pair{}, false
	}

	pair := Pair{
		AccessToken:  vals[keyAccessToken],
		RefreshToken: vals[keyRefreshToken],
	}

	return pair, pair.AccessToken != ""
}

// Set implements Store.
func (f *File) Set(pair Pair) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	vals := map[string]string{
		keyAccessToken:  pair.AccessToken,
		keyRefreshToken: pair.RefreshToken,
	}

	sealed, err := f.sealer.Encode(credentialsName, vals)
	if err != nil {
		return errors.Wrap(err, "securecookie.SecureCookie.Encode()")
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return errors.Wrap(err, "os.MkdirAll()")
	}

	if err := os.WriteFile(f.path, []byte(sealed), 0o600); err != nil {
		return errors.Wrap(err, "os.WriteFile()")
	}

	return nil
}

// Clear implements Store.
func (f *File) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "os.Remove()")
	}

	return nil
}
