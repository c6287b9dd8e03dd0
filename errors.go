package browserkit

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tailbits/browserkit/rawjson"
)

// ErrMissingAPIKey is returned when a request is made without an API key.
var ErrMissingAPIKey = errors.New("browserkit: missing API key")

// APIError is a response with a non-2xx status.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	// Message is taken from the "message" or "error" property of a JSON
	// error body, if any.
	Message string
	Body    []byte
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("browserkit: %s %s: %d %s", e.Method, e.Path, e.StatusCode, msg)
}

func newAPIError(req *http.Request, status int, body []byte) *APIError {
	e := &APIError{
		Method:     req.Method,
		Path:       req.URL.Path,
		StatusCode: status,
		Body:       body,
	}
	if obj, err := rawjson.DecodeObject(body); err == nil {
		for _, key := range []string{"message", "error"} {
			if v, ok := obj.Get(key); ok {
				if s, ok := v.Str(); ok {
					e.Message = s
					break
				}
			}
		}
	}
	return e
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
