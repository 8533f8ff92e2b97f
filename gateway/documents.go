package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Upload describes a multipart document upload: metadata form fields
// plus one file part.
type Upload struct {
	// Fields are metadata form fields sent alongside the file.
	Fields map[string]string
	// FileName is the name reported for the file part.
	FileName string
	// File is the file content.
	File io.Reader
}

// documentFileField is the form field name the backend expects the file
// part under.
const documentFileField = "file"

// Documents lists documents filtered by params.
func (c *Client) Documents(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.getJSON(ctx, "/documents", params)
}

// DocumentByID returns a single document.
func (c *Client) DocumentByID(ctx context.Context, id string) (json.RawMessage, error) {
	return c.getJSON(ctx, fmt.Sprintf("/documents/%s", id), nil)
}

// UploadDocument uploads a new document. Uploads go through the shared
// request core, so status handling, including the 401 token clear,
// matches every other call.
func (c *Client) UploadDocument(ctx context.Context, up Upload) (json.RawMessage, error) {
	return c.upload(ctx, "/documents", up)
}

// CreateDocumentVersion uploads a new version of an existing document.
func (c *Client) CreateDocumentVersion(ctx context.Context, id string, up Upload) (json.RawMessage, error) {
	return c.upload(ctx, fmt.Sprintf("/documents/%s/version", id), up)
}

func (c *Client) upload(ctx context.Context, path string, up Upload) (json.RawMessage, error) {
	body := multipartBody{
		fields:    up.Fields,
		fileField: documentFileField,
		fileName:  up.FileName,
		file:      up.File,
	}

	var data json.RawMessage
	if err := c.do(ctx, http.MethodPost, path, nil, body, &data); err != nil {
		return nil, err
	}

	return data, nil
}

func (c *Client) UpdateDocument(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return c.putJSON(ctx, fmt.Sprintf("/documents/%s", id), data)
}

func (c *Client) DeactivateDocument(ctx context.Context, id string) (json.RawMessage, error) {
	return c.postJSON(ctx, fmt.Sprintf("/documents/%s/deactivate", id), nil)
}

func (c *Client) DeleteDocument(ctx context.Context, id string) (json.RawMessage, error) {
	return c.deleteJSON(ctx, fmt.Sprintf("/documents/%s", id))
}
