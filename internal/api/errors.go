package api

import (
	"fmt"
)

// APIError represents a non-success HTTP response from the Docs API.
// Body carries the raw response text; the Docs error schema is not
// interpreted.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("docs API error %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("docs API error %d", e.StatusCode)
}

// NetworkError represents a transport-level failure.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}
