package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNoBody indicates the engine answered with an empty or non-JSON body
// where a payload was required.
var ErrNoBody = errors.New("backend: empty response body")

// APIError is a non-2xx answer from the engine. Detail carries the engine's
// `detail` field when the body was parseable JSON.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend: http status %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("backend: http status %d", e.Status)
}

// IsNotFound reports whether err is an engine 404. The indicator endpoint
// uses 404 to mean "no indicator history yet", which callers treat as a
// successful empty result.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
