package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cccteam/ccc/accesstypes"
	"github.com/google/go-cmp/cmp"
	"github.com/wasteworks/erpadmin/tokenstore"
)

func TestClient_Login(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		respBody   string
		wantErr    bool
		wantPair   *tokenstore.Pair
		wantData   *AuthData
	}{
		{
			name:     "success stores token pair",
			status:   http.StatusOK,
			respBody: `{"success":true,"data":{"accessToken":"at","refreshToken":"rt","user":{"id":"u1","email":"a@b.c","name":"Asha","role":"admin"},"tenant":{"id":"t1","name":"Acme Scrap"},"permissions":["clients.view"]}}`,
			wantPair: &tokenstore.Pair{AccessToken: "at", RefreshToken: "rt"},
			wantData: &AuthData{
				AccessToken:  "at",
				RefreshToken: "rt",
				User:         User{ID: "u1", Email: "a@b.c", Name: "Asha", Role: "admin"},
				Tenant:       &Tenant{ID: "t1", Name: "Acme Scrap"},
				Permissions:  []accesstypes.Permission{"clients.view"},
			},
		},
		{
			name:     "failure leaves store empty",
			status:   http.StatusUnauthorized,
			respBody: `{"success":false,"message":"Invalid credentials"}`,
			wantErr:  true,
		},
		{
			name:     "success without tokens stores nothing",
			status:   http.StatusOK,
			respBody: `{"success":true,"data":{"user":{"id":"u1"}}}`,
			wantData: &AuthData{User: User{ID: "u1"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotBody Credentials
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewDecoder(r.Body).Decode(&gotBody)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.respBody))
			}))
			defer srv.Close()

			store := &tokenstore.Memory{}
			c := New(srv.URL, store)

			creds := Credentials{Email: "a@b.c", Password: "secret"}
			data, err := c.Login(context.Background(), creds)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Client.Login() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(creds, gotBody); diff != "" {
				t.Errorf("request body mismatch (-want +got):\n%s", diff)
			}

			pair, ok := store.Get()
			if (tt.wantPair != nil) != ok {
				t.Fatalf("token stored = %v, want %v", ok, tt.wantPair != nil)
			}
			if tt.wantPair != nil {
				if diff := cmp.Diff(*tt.wantPair, pair); diff != "" {
					t.Errorf("stored pair mismatch (-want +got):\n%s", diff)
				}
			}

			if diff := cmp.Diff(tt.wantData, data); diff != "" {
				t.Errorf("auth data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClient_Logout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		respBody string
		wantErr  bool
	}{
		{
			name:     "success clears store",
			status:   http.StatusOK,
			respBody: `{"success":true}`,
		},
		{
			name:     "server failure still clears store",
			status:   http.StatusInternalServerError,
			respBody: `{"success":false,"message":"session backend down"}`,
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.respBody))
			}))
			defer srv.Close()

			store := &tokenstore.Memory{}
			if err := store.Set(tokenstore.Pair{AccessToken: "at"}); err != nil {
				t.Fatal(err)
			}

			c := New(srv.URL, store)
			if err := c.Logout(context.Background()); (err != nil) != tt.wantErr {
				t.Fatalf("Client.Logout() error = %v, wantErr %v", err, tt.wantErr)
			}

			if _, ok := store.Get(); ok {
				t.Error("token pair still present after logout")
			}
		})
	}
}

func TestClient_CurrentUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		respBody string
		want     *CurrentUser
	}{
		{
			name:     "nested user payload",
			respBody: `{"success":true,"data":{"user":{"id":"u1","email":"a@b.c","role":"operator"},"tenant":{"id":"t1","name":"Acme Scrap"},"permissions":["jobs.view"]}}`,
			want: &CurrentUser{
				User:        User{ID: "u1", Email: "a@b.c", Role: "operator"},
				Tenant:      &Tenant{ID: "t1", Name: "Acme Scrap"},
				Permissions: []accesstypes.Permission{"jobs.view"},
			},
		},
		{
			name:     "flat user payload",
			respBody: `{"success":true,"data":{"id":"u1","email":"a@b.c","role":"operator"}}`,
			want: &CurrentUser{
				User: User{ID: "u1", Email: "a@b.c", Role: "operator"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.respBody))
			}))
			defer srv.Close()

			c := New(srv.URL, &tokenstore.Memory{})
			got, err := c.CurrentUser(context.Background())
			if err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("current user mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
