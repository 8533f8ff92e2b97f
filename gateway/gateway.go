// Package gateway implements the REST client for the ERP backend. It is
// the single chokepoint for backend calls: every entity method builds a
// path and delegates to the shared request core, which attaches the
// bearer token, decodes the response envelope, and normalizes errors.
package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/cccteam/httpio"
	"github.com/go-playground/errors/v5"
	"github.com/gofrs/uuid"
	"github.com/wasteworks/erpadmin/tokenstore"
	"go.opentelemetry.io/otel"
)

const name = "github.com/wasteworks/erpadmin/gateway"

// DefaultBaseURL is the development backend, API version path included.
const DefaultBaseURL = "http://localhost:3000/api/v1"

// Doer executes HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(r *http.Request) (*http.Response, error)
}

// Client is the API gateway client. All methods are safe for concurrent
// use.
type Client struct {
	baseURL string
	doer    Doer
	tokens  tokenstore.Store
}

// Option configures a Client.
type Option func(*Client)

// WithDoer replaces the HTTP transport. (default: http.DefaultClient)
func WithDoer(d Doer) Option {
	return func(c *Client) {
		c.doer = d
	}
}

// New creates a Client for the backend at baseURL. Tokens found in the
// store are attached to every request; requests without a stored token
// are still attempted and left to the server to reject.
func New(baseURL string, tokens tokenstore.Store, options ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL: baseURL,
		doer:    http.DefaultClient,
		tokens:  tokens,
	}

	for _, opt := range options {
		opt(c)
	}

	return c
}

// do is the request core shared by every method, uploads included. On a
// 401 it clears the token store and returns an error satisfying
// httpio.HasUnauthorized; it never navigates, that reaction belongs to
// the caller.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body bodyEncoder, out any) error {
	ctx, span := otel.Tracer(name).Start(ctx, "Client.do()")
	defer span.End()

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	var contentType string
	if body != nil {
		var err error
		reader, contentType, err = body.encode()
		if err != nil {
			return errors.Wrap(err, "gateway.bodyEncoder.encode()")
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return errors.Wrap(err, "http.NewRequestWithContext()")
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if pair, ok := c.tokens.Get(); ok {
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	}
	if id, err := uuid.NewV4(); err == nil {
		req.Header.Set("X-Request-Id", id.String())
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return errors.Wrap(err, "gateway.Doer.Do()")
	}
	defer resp.Body.Close()

	env, raw, err := decodeEnvelope(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "decoding response for %s %s", method, path)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := newError(resp.StatusCode, env, raw)
		if resp.StatusCode == http.StatusUnauthorized {
			if err := c.tokens.Clear(); err != nil {
				return errors.Wrap(err, "tokenstore.Store.Clear()")
			}

			return httpio.NewUnauthorizedMessageWithError(apiErr, apiErr.Message)
		}

		return apiErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.Wrapf(err, "decoding data for %s %s", method, path)
		}
	}

	return nil
}

// Raw-data helpers backing the entity methods. The backend owns the
// entity schemas; this layer passes them through verbatim.

func (c *Client) getJSON(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	var data json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, query, nil, &data); err != nil {
		return nil, err
	}

	return data, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	var body bodyEncoder
	if payload != nil {
		body = jsonBody{v: payload}
	}

	var data json.RawMessage
	if err := c.do(ctx, http.MethodPost, path, nil, body, &data); err != nil {
		return nil, err
	}

	return data, nil
}

func (c *Client) putJSON(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	var data json.RawMessage
	if err := c.do(ctx, http.MethodPut, path, nil, jsonBody{v: payload}, &data); err != nil {
		return nil, err
	}

	return data, nil
}

func (c *Client) deleteJSON(ctx context.Context, path string) (json.RawMessage, error) {
	var data json.RawMessage
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, &data); err != nil {
		return nil, err
	}

	return data, nil
}
