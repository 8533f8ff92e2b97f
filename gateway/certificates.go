package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Certificates lists recycling certificates filtered by params.
func (c *Client) Certificates(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/certificates", params)
}

// CertificateByID returns a single certificate.
func (c *Client) CertificateByID(ctx context.Context, id string) (json.RawMessage, error) {
	return c.getJSON(ctx, fmt.Sprintf("/certificates/%s", id), nil)
}

func (c *Client) CreateCertificate(ctx context.Context, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, "/certificates", data)
}

// VerifyCertificate marks a certificate as verified.
func (c *Client) VerifyCertificate(ctx context.Context, id string) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/certificates/%s/verify", id), nil)
}

func (c *Client) DeleteCertificate(ctx context.Context, id string) (json.RawMessage, error) {
	return c.deleteJSON(ctx, fmt.Sprintf("/certificates/%s", id))
}

// CertificateTemplates lists all certificate templates.
func (c *Client) CertificateTemplates(ctx context.Context) (json.RawMessage, error) {
	return c.getJSON(ctx, "/certificates/templates/all", nil)
}

func (c *Client) CreateCertificateTemplate(ctx context.Context, data any) (json.RawMessage, error) {
	return c.postJSON(ctx, "/certificates/templates", data)
}

func (c *Client) CertificateTemplateByID(ctx context.Context, templateID string) (json.RawMessage, error) {
	return c.getJSON(ctx, fmt.Sprintf("/certificates/templates/%s", templateID), nil)
}

func (c *Client) UpdateCertificateTemplate(ctx context.Context, templateID string, data any) (json.RawMessage, error) {
	return c.putJSON(ctx, fmt.Sprintf("/certificates/templates/%s", templateID), data)
}
