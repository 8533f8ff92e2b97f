package gateway

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/cccteam/httpio"
	"github.com/google/go-cmp/cmp"
	"github.com/wasteworks/erpadmin/tokenstore"
)

func TestClient_do(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		storedPair     *tokenstore.Pair
		status         int
		respBody       string
		wantErr        bool
		wantUnauth     bool
		wantMessage    string
		wantFieldErrs  []FieldError
		wantData       string
		wantTokenAfter bool
	}{
		{
			name:           "success decodes data and attaches bearer",
			storedPair:     &tokenstore.Pair{AccessToken: "token-a", RefreshToken: "token-r"},
			status:         http.StatusOK,
			respBody:       `{"success":true,"data":[{"id":"c1"}]}`,
			wantData:       `[{"id":"c1"}]`,
			wantTokenAfter: true,
		},
		{
			name:     "success without stored token",
			status:   http.StatusOK,
			respBody: `{"success":true,"data":[]}`,
			wantData: `[]`,
		},
		{
			name:        "unauthorized clears tokens",
			storedPair:  &tokenstore.Pair{AccessToken: "stale"},
			status:      http.StatusUnauthorized,
			respBody:    `{"success":false,"message":"Token expired"}`,
			wantErr:     true,
			wantUnauth:  true,
			wantMessage: "Token expired",
		},
		{
			name:       "validation failure carries field errors",
			storedPair: &tokenstore.Pair{AccessToken: "token-a"},
			status:     http.StatusBadRequest,
			respBody:   `{"success":false,"message":"Validation failed","errors":[{"field":"email","message":"email is required"}]}`,
			wantErr:    true,
			wantFieldErrs: []FieldError{
				{Field: "email", Message: "email is required"},
			},
			wantMessage:    "Validation failed",
			wantTokenAfter: true,
		},
		{
			name:           "failure without message gets default",
			storedPair:     &tokenstore.Pair{AccessToken: "token-a"},
			status:         http.StatusInternalServerError,
			respBody:       `{"success":false}`,
			wantErr:        true,
			wantMessage:    "API request failed",
			wantTokenAfter: true,
		},
		{
			name:           "non-json body fails even on ok status",
			storedPair:     &tokenstore.Pair{AccessToken: "token-a"},
			status:         http.StatusOK,
			respBody:       `<html>gateway timeout</html>`,
			wantErr:        true,
			wantTokenAfter: true,
		},
		{
			name:       "non-json body fails on error status",
			storedPair: &tokenstore.Pair{AccessToken: "token-a"},
			status:     http.StatusBadGateway,
			respBody:   `<html>bad gateway</html>`,
			wantErr:    true,
			// Status never reaches the error mapping when the body is unparseable,
			// so the tokens survive even a 401-adjacent failure.
			wantTokenAfter: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotAuth string
			var gotRequestID string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				gotRequestID = r.Header.Get("X-Request-Id")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.respBody))
			}))
			defer srv.Close()

			store := &tokenstore.Memory{}
			if tt.storedPair != nil {
				if err := store.Set(*tt.storedPair); err != nil {
					t.Fatal(err)
				}
			}

			c := New(srv.URL, store)
			data, err := c.Clients(context.Background(), nil)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Client.Clients() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.storedPair != nil {
				if want := "Bearer " + tt.storedPair.AccessToken; gotAuth != want {
					t.Errorf("Authorization = %q, want %q", gotAuth, want)
				}
			} else if gotAuth != "" {
				t.Errorf("Authorization = %q, want empty", gotAuth)
			}
			if gotRequestID == "" {
				t.Error("X-Request-Id header not set")
			}

			if _, ok := store.Get(); ok != tt.wantTokenAfter {
				t.Errorf("token present after call = %v, want %v", ok, tt.wantTokenAfter)
			}

			if err != nil {
				if got := httpio.HasUnauthorized(err); got != tt.wantUnauth {
					t.Errorf("httpio.HasUnauthorized() = %v, want %v", got, tt.wantUnauth)
				}
				if tt.wantMessage != "" {
					apiErr, ok := AsError(err)
					if !ok {
						t.Fatalf("AsError() = false, want backend error in chain: %v", err)
					}
					if apiErr.Message != tt.wantMessage {
						t.Errorf("Error.Message = %q, want %q", apiErr.Message, tt.wantMessage)
					}
					if apiErr.StatusCode != tt.status {
						t.Errorf("Error.StatusCode = %d, want %d", apiErr.StatusCode, tt.status)
					}
					if diff := cmp.Diff(tt.wantFieldErrs, apiErr.FieldErrors); diff != "" {
						t.Errorf("Error.FieldErrors mismatch (-want +got):\n%s", diff)
					}
				}

				return
			}

			if string(data) != tt.wantData {
				t.Errorf("data = %s, want %s", data, tt.wantData)
			}
		})
	}
}

func TestClient_queryParams(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, &tokenstore.Memory{})

	params := url.Values{}
	params.Set("status", "active")
	params.Set("page", "2")
	if _, err := c.Invoices(context.Background(), params); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(params, gotQuery); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_upload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		status         int
		respBody       string
		wantErr        bool
		wantUnauth     bool
		wantTokenAfter bool
	}{
		{
			name:           "success",
			status:         http.StatusCreated,
			respBody:       `{"success":true,"data":{"id":"d1"}}`,
			wantTokenAfter: true,
		},
		{
			name:       "unauthorized clears tokens like any other call",
			status:     http.StatusUnauthorized,
			respBody:   `{"success":false,"message":"Token expired"}`,
			wantErr:    true,
			wantUnauth: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotContentType string
			var gotCategory string
			var gotFileName string
			var gotFile string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotContentType = r.Header.Get("Content-Type")
				if err := r.ParseMultipartForm(1 << 20); err == nil {
					gotCategory = r.FormValue("category")
					if file, header, err := r.FormFile("file"); err == nil {
						gotFileName = header.Filename
						if content, err := io.ReadAll(file); err == nil {
							gotFile = string(content)
						}
					}
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.respBody))
			}))
			defer srv.Close()

			store := &tokenstore.Memory{}
			if err := store.Set(tokenstore.Pair{AccessToken: "token-a"}); err != nil {
				t.Fatal(err)
			}

			c := New(srv.URL, store)
			_, err := c.UploadDocument(context.Background(), Upload{
				Fields:   map[string]string{"category": "licenses"},
				FileName: "license.pdf",
				File:     strings.NewReader("pdf-bytes"),
			})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Client.UploadDocument() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := httpio.HasUnauthorized(err); got != tt.wantUnauth {
				t.Errorf("httpio.HasUnauthorized() = %v, want %v", got, tt.wantUnauth)
			}
			if _, ok := store.Get(); ok != tt.wantTokenAfter {
				t.Errorf("token present after call = %v, want %v", ok, tt.wantTokenAfter)
			}

			if !strings.HasPrefix(gotContentType, "multipart/form-data; boundary=") {
				t.Errorf("Content-Type = %q, want multipart with boundary", gotContentType)
			}
			if gotCategory != "licenses" {
				t.Errorf("category field = %q, want %q", gotCategory, "licenses")
			}
			if gotFileName != "license.pdf" {
				t.Errorf("file name = %q, want %q", gotFileName, "license.pdf")
			}
			if gotFile != "pdf-bytes" {
				t.Errorf("file content = %q, want %q", gotFile, "pdf-bytes")
			}
		})
	}
}

func TestClient_entityPaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		call       func(ctx context.Context, c *Client) error
		wantMethod string
		wantPath   string
	}{
		{
			name: "client approval",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.ApproveClient(ctx, "c1")

				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/clients/c1/approve",
		},
		{
			name: "job status",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateJobStatus(ctx, "j1", "completed")

				return err
			},
			wantMethod: http.MethodPut,
			wantPath:   "/jobs/j1/status",
		},
		{
			name: "outbound dispatch",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.DispatchOutbound(ctx, "o1")

				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/outbound/o1/dispatch",
		},
		{
			name: "role permission assignment",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.AssignPermissions(ctx, "r1", nil)

				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/roles/r1/permissions",
		},
		{
			name: "invoice deletion",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.DeleteInvoice(ctx, "i1")

				return err
			},
			wantMethod: http.MethodDelete,
			wantPath:   "/invoices/i1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotMethod, gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotMethod = r.Method
				gotPath = r.URL.Path
				_, _ = w.Write([]byte(`{"success":true,"data":{}}`))
			}))
			defer srv.Close()

			c := New(srv.URL, &tokenstore.Memory{})
			if err := tt.call(context.Background(), c); err != nil {
				t.Fatal(err)
			}

			if gotMethod != tt.wantMethod {
				t.Errorf("method = %q, want %q", gotMethod, tt.wantMethod)
			}
			if gotPath != tt.wantPath {
				t.Errorf("path = %q, want %q", gotPath, tt.wantPath)
			}
		})
	}
}
