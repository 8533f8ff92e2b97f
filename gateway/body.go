package gateway

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"

	"github.com/go-playground/errors/v5"
)

// bodyEncoder is the body-encoding strategy for the request core, so
// JSON and multipart requests share one ok/error path.
type bodyEncoder interface {
	encode() (body io.Reader, contentType string, err error)
}

var (
	_ bodyEncoder = jsonBody{}
	_ bodyEncoder = multipartBody{}
)

type jsonBody struct {
	v any
}

func (b jsonBody) encode() (io.Reader, string, error) {
	data, err := json.Marshal(b.v)
	if err != nil {
		return nil, "", errors.Wrap(err, "json.Marshal()")
	}

	return bytes.NewReader(data), "application/json", nil
}

// multipartBody encodes form fields plus one file part. The content type
// carries the generated boundary, matching what the transport would have
// negotiated for a browser form upload.
type multipartBody struct {
	fields    map[string]string
	fileField string
	fileName  string
	file      io.Reader
}

func (b multipartBody) encode() (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for field, value := range b.fields {
		if err := w.WriteField(field, value); err != nil {
			return nil, "", errors.Wrap(err, "multipart.Writer.WriteField()")
		}
	}

	if b.file != nil {
		part, err := w.CreateFormFile(b.fileField, b.fileName)
		if err != nil {
			return nil, "", errors.Wrap(err, "multipart.Writer.CreateFormFile()")
		}
		if _, err := io.Copy(part, b.file); err != nil {
			return nil, "", errors.Wrap(err, "io.Copy()")
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", errors.Wrap(err, "multipart.Writer.Close()")
	}

	return buf, w.FormDataContentType(), nil
}
