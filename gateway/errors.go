package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/errors/v5"
)

// FieldError is one entry of the backend's structured validation list,
// mapped by views onto per-field form feedback.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries a non-ok backend response: the server message, the
// numeric status, the validation list when present, and the raw parsed
// body for callers that need more.
type Error struct {
	StatusCode  int
	Message     string
	FieldErrors []FieldError
	Body        json.RawMessage
}

func newError(statusCode int, env *envelope, raw json.RawMessage) *Error {
	msg := env.Message
	if msg == "" {
		msg = "API request failed"
	}

	return &Error{
		StatusCode:  statusCode,
		Message:     msg,
		FieldErrors: env.Errors,
		Body:        raw,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// AsError unwraps err to the backend Error, if one is in the chain.
func AsError(err error) (*Error, bool) {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}
