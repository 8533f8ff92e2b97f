package webgateway

import (
	"io"
	"net/http"
	"net/http/httputil"
	"strings"

	"github.com/cccteam/logger"
)

// proxy forwards the request to the ERP API with the cookie-held bearer
// attached. An upstream 401 becomes a redirect to the login form with
// the credential cookie cleared, the navigation reaction lives here, at
// the edge, not in the data layer.
func (s *Server) proxy() http.HandlerFunc {
	rp := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(s.upstream)
			pr.Out.Host = s.upstream.Host
			pr.Out.Header.Del("Cookie")
			if pair, ok := s.cookies.readPair(pr.In); ok {
				pr.Out.Header.Set("Authorization", "Bearer "+pair.AccessToken)
			}
		},
		ModifyResponse: redirectUnauthorized,
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.Req(r).Error(err)
			w.WriteHeader(http.StatusBadGateway)
		},
	}

	return rp.ServeHTTP
}

// redirectUnauthorized rewrites an upstream 401 into a login redirect
// that also expires the credential cookie.
func redirectUnauthorized(resp *http.Response) error {
	if resp.StatusCode != http.StatusUnauthorized {
		return nil
	}

	if err := resp.Body.Close(); err != nil {
		return err
	}
	resp.Body = io.NopCloser(strings.NewReader(""))
	resp.ContentLength = 0

	resp.Header = http.Header{}
	resp.Header.Set("Location", "/auth/login")
	resp.Header.Add("Set-Cookie", clearedCookie().String())
	resp.StatusCode = http.StatusSeeOther
	resp.Status = http.StatusText(http.StatusSeeOther)

	return nil
}
