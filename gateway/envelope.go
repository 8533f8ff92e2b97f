package gateway

import (
	"encoding/json"
	"io"

	"github.com/go-playground/errors/v5"
)

// envelope is the response shape every backend endpoint uses:
// {success, message?, data?, errors?}.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []FieldError    `json:"errors"`
}

// decodeEnvelope reads and parses the response body. The body is parsed
// as JSON unconditionally, so a non-JSON error page is itself a failure.
func decodeEnvelope(r io.Reader) (*envelope, json.RawMessage, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, errors.Wrap(err, "io.ReadAll()")
	}

	env := &envelope{}
	if err := json.Unmarshal(raw, env); err != nil {
		return nil, nil, errors.Wrap(err, "json.Unmarshal()")
	}

	return env, raw, nil
}
