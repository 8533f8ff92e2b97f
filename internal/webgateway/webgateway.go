// Package webgateway is the browser-facing admin gateway: it serves a
// login form, holds the backend token pair in a sealed cookie, and
// reverse-proxies everything else to the ERP API with the bearer
// attached. The browser never sees a token.
package webgateway

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/cccteam/httpio"
	"github.com/cccteam/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/errors/v5"
	"github.com/gorilla/securecookie"
	"github.com/wasteworks/erpadmin/gateway"
	"github.com/wasteworks/erpadmin/tokenstore"
)

// Server serves the admin gateway.
type Server struct {
	apiURL   string
	upstream *url.URL
	doer     gateway.Doer
	cookies  *cookieClient
}

// Option configures a Server.
type Option func(*Server)

// WithDoer replaces the HTTP transport used for upstream calls.
// (default: http.DefaultClient)
func WithDoer(d gateway.Doer) Option {
	return func(s *Server) {
		s.doer = d
	}
}

// New creates a Server proxying to the ERP API at apiURL. The
// securecookie keys seal the per-browser credential cookie.
func New(apiURL string, secureCookie *securecookie.SecureCookie, options ...Option) (*Server, error) {
	if apiURL == "" {
		apiURL = gateway.DefaultBaseURL
	}

	upstream, err := url.Parse(apiURL)
	if err != nil {
		return nil, errors.Wrap(err, "url.Parse()")
	}

	s := &Server{
		apiURL:   apiURL,
		upstream: upstream,
		doer:     http.DefaultClient,
		cookies:  newCookieClient(secureCookie),
	}

	for _, opt := range options {
		opt(s)
	}

	return s, nil
}

// Routes returns the gateway router: the auth pages plus a catch-all
// proxy to the API.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/auth/login", s.loginForm())
	r.Post("/auth/login", s.login())
	r.Post("/auth/logout", s.logout())
	r.NotFound(s.proxy())

	return r
}

// handle returns a handler that logs any error coming from our custom handlers
func (s *Server) handle(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := handler(w, r); err != nil {
			if httpio.CauseIsError(err) {
				logger.Req(r).Error(err)
			} else {
				logger.Req(r).Infof("['%s']", strings.Join(httpio.Messages(err), "', '"))
			}
		}
	})
}

// client builds a gateway client over the given token store. A fresh
// client per request keeps the store per-browser, tokens live in the
// cookie, not in the process.
func (s *Server) client(store tokenstore.Store) *gateway.Client {
	return gateway.New(s.apiURL, store, gateway.WithDoer(s.doer))
}
