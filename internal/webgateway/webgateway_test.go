package webgateway

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gorilla/securecookie"
	"github.com/wasteworks/erpadmin/tokenstore"
)

func testSecureCookie() *securecookie.SecureCookie {
	return securecookie.New(
		[]byte("0123456789abcdef0123456789abcdef"),
		[]byte("0123456789abcdef"),
	)
}

func decodePairCookie(t *testing.T, sc *securecookie.SecureCookie, cookies []*http.Cookie) (tokenstore.Pair, bool) {
	t.Helper()

	for _, cookie := range cookies {
		if cookie.Name != wgCredentialCookieName.String() {
			continue
		}
		if cookie.MaxAge < 0 || cookie.Value == "" {
			return tokenstore.Pair{}, false
		}

		cval := make(map[wgKey]string)
		if err := sc.Decode(wgCredentialCookieName.String(), cookie.Value, &cval); err != nil {
			t.Fatalf("securecookie.Decode() = %v", err)
		}

		return tokenstore.Pair{
			AccessToken:  cval[wgAccessToken],
			RefreshToken: cval[wgRefreshToken],
		}, true
	}

	return tokenstore.Pair{}, false
}

func TestServer_login(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		upstreamStatus int
		upstreamBody   string
		closeUpstream  bool
		wantStatus     int
		wantLocation   string
		wantPair       *tokenstore.Pair
		wantBodyPart   string
	}{
		{
			name:           "success seals pair and redirects home",
			upstreamStatus: http.StatusOK,
			upstreamBody:   `{"success":true,"data":{"accessToken":"at","refreshToken":"rt","user":{"id":"u1"}}}`,
			wantStatus:     http.StatusSeeOther,
			wantLocation:   "/",
			wantPair:       &tokenstore.Pair{AccessToken: "at", RefreshToken: "rt"},
		},
		{
			name:           "bad credentials re-render the form with the server message",
			upstreamStatus: http.StatusUnauthorized,
			upstreamBody:   `{"success":false,"message":"Invalid credentials"}`,
			wantStatus:     http.StatusUnauthorized,
			wantBodyPart:   "Invalid credentials",
		},
		{
			name:           "backend failure keeps its status",
			upstreamStatus: http.StatusInternalServerError,
			upstreamBody:   `{"success":false,"message":"database unavailable"}`,
			wantStatus:     http.StatusInternalServerError,
			wantBodyPart:   "database unavailable",
		},
		{
			name:          "unreachable backend reads as bad gateway",
			closeUpstream: true,
			wantStatus:    http.StatusBadGateway,
			wantBodyPart:  "Login failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.upstreamStatus)
				_, _ = w.Write([]byte(tt.upstreamBody))
			}))
			if tt.closeUpstream {
				upstream.Close()
			} else {
				defer upstream.Close()
			}

			sc := testSecureCookie()
			s, err := New(upstream.URL, sc)
			if err != nil {
				t.Fatal(err)
			}

			form := url.Values{}
			form.Set("email", "a@b.c")
			form.Set("password", "secret")
			r := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
			r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			w := httptest.NewRecorder()

			s.Routes().ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantLocation != "" {
				if got := w.Header().Get("Location"); got != tt.wantLocation {
					t.Errorf("Location = %q, want %q", got, tt.wantLocation)
				}
			}
			if tt.wantBodyPart != "" && !strings.Contains(w.Body.String(), tt.wantBodyPart) {
				t.Errorf("body %q does not contain %q", w.Body.String(), tt.wantBodyPart)
			}

			pair, ok := decodePairCookie(t, sc, w.Result().Cookies())
			if (tt.wantPair != nil) != ok {
				t.Fatalf("credential cookie set = %v, want %v", ok, tt.wantPair != nil)
			}
			if tt.wantPair != nil {
				if diff := cmp.Diff(*tt.wantPair, pair); diff != "" {
					t.Errorf("sealed pair mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestServer_logout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		upstreamStatus int
	}{
		{
			name:           "upstream success",
			upstreamStatus: http.StatusOK,
		},
		{
			name:           "cookie cleared even when upstream fails",
			upstreamStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.upstreamStatus)
				_, _ = w.Write([]byte(`{"success":false,"message":"backend down"}`))
			}))
			defer upstream.Close()

			sc := testSecureCookie()
			s, err := New(upstream.URL, sc)
			if err != nil {
				t.Fatal(err)
			}

			r := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
			attachPairCookie(t, sc, r, tokenstore.Pair{AccessToken: "at"})
			w := httptest.NewRecorder()

			s.Routes().ServeHTTP(w, r)

			if w.Code != http.StatusSeeOther {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
			}
			if got := w.Header().Get("Location"); got != "/auth/login" {
				t.Errorf("Location = %q, want %q", got, "/auth/login")
			}
			if _, ok := decodePairCookie(t, sc, w.Result().Cookies()); ok {
				t.Error("credential cookie survived logout")
			}
		})
	}
}

func TestServer_proxy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		pair           *tokenstore.Pair
		upstreamStatus int
		wantStatus     int
		wantLocation   string
		wantAuth       string
	}{
		{
			name:           "bearer attached from cookie",
			pair:           &tokenstore.Pair{AccessToken: "at"},
			upstreamStatus: http.StatusOK,
			wantStatus:     http.StatusOK,
			wantAuth:       "Bearer at",
		},
		{
			name:           "no cookie proxies unauthenticated",
			upstreamStatus: http.StatusOK,
			wantStatus:     http.StatusOK,
		},
		{
			name:           "upstream 401 becomes login redirect",
			pair:           &tokenstore.Pair{AccessToken: "stale"},
			upstreamStatus: http.StatusUnauthorized,
			wantStatus:     http.StatusSeeOther,
			wantLocation:   "/auth/login",
			wantAuth:       "Bearer stale",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotAuth string
			upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				w.WriteHeader(tt.upstreamStatus)
				_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
			}))
			defer upstream.Close()

			sc := testSecureCookie()
			s, err := New(upstream.URL, sc)
			if err != nil {
				t.Fatal(err)
			}

			r := httptest.NewRequest(http.MethodGet, "/clients", nil)
			if tt.pair != nil {
				attachPairCookie(t, sc, r, *tt.pair)
			}
			w := httptest.NewRecorder()

			s.Routes().ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if gotAuth != tt.wantAuth {
				t.Errorf("Authorization = %q, want %q", gotAuth, tt.wantAuth)
			}
			if tt.wantLocation != "" {
				if got := w.Header().Get("Location"); got != tt.wantLocation {
					t.Errorf("Location = %q, want %q", got, tt.wantLocation)
				}
				if _, ok := decodePairCookie(t, sc, w.Result().Cookies()); ok {
					t.Error("credential cookie survived upstream 401")
				}
			}
		})
	}
}

func attachPairCookie(t *testing.T, sc *securecookie.SecureCookie, r *http.Request, pair tokenstore.Pair) {
	t.Helper()

	encoded, err := sc.Encode(wgCredentialCookieName.String(), map[wgKey]string{
		wgAccessToken:  pair.AccessToken,
		wgRefreshToken: pair.RefreshToken,
	})
	if err != nil {
		t.Fatalf("securecookie.Encode() = %v", err)
	}

	r.AddCookie(&http.Cookie{Name: wgCredentialCookieName.String(), Value: encoded})
}
