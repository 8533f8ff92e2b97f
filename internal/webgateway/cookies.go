package webgateway

import (
	"net/http"

	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"github.com/gorilla/securecookie"
	"github.com/wasteworks/erpadmin/tokenstore"
)

// wgKey is a type for storing values in the credential cookie
type wgKey string

func (c wgKey) String() string {
	return string(c)
}

const (
	// Keys used within the Secure Cookie
	wgCredentialCookieName wgKey = "erpadmin"
	wgAccessToken          wgKey = "accessToken"
	wgRefreshToken         wgKey = "refreshToken"
)

type cookieClient struct {
	secureCookie *securecookie.SecureCookie
}

func newCookieClient(secureCookie *securecookie.SecureCookie) *cookieClient {
	return &cookieClient{
		secureCookie: secureCookie,
	}
}

// readPair recovers the token pair from the credential cookie. A
// missing or unsealable cookie reads as no pair.
func (c *cookieClient) readPair(r *http.Request) (tokenstore.Pair, bool) {
	cookie, err := r.Cookie(wgCredentialCookieName.String())
	if err != nil {
		return tokenstore.Pair{}, false
	}

	cval := make(map[wgKey]string)
	if err := c.secureCookie.Decode(wgCredentialCookieName.String(), cookie.Value, &cval); err != nil {
		logger.Req(r).Error(errors.Wrap(err, "securecookie.Decode()"))

		return tokenstore.Pair{}, false
	}
	if cval[wgAccessToken] == "" {
		return tokenstore.Pair{}, false
	}

	return tokenstore.Pair{
		AccessToken:  cval[wgAccessToken],
		RefreshToken: cval[wgRefreshToken],
	}, true
}

// writePair seals the token pair into the credential cookie.
func (c *cookieClient) writePair(w http.ResponseWriter, pair tokenstore.Pair) error {
	cval := map[wgKey]string{
		wgAccessToken:  pair.AccessToken,
		wgRefreshToken: pair.RefreshToken,
	}
	encoded, err := c.secureCookie.Encode(wgCredentialCookieName.String(), cval)
	if err != nil {
		return errors.Wrap(err, "securecookie.Encode()")
	}

	http.SetCookie(w, &http.Cookie{
		Name:     wgCredentialCookieName.String(),
		Value:    encoded,
		Path:     "/",
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	return nil
}

// clearPair expires the credential cookie.
func (c *cookieClient) clearPair(w http.ResponseWriter) {
	http.SetCookie(w, clearedCookie())
}

func clearedCookie() *http.Cookie {
	return &http.Cookie{
		Name:     wgCredentialCookieName.String(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}
