package helpscoutdocs

import (
	"errors"
	"fmt"

	"github.com/helpscout/docs-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("Docs API key is required")

	// ErrNoUpdateFields is returned when an update supplies no fields.
	ErrNoUpdateFields = errors.New("at least one field must be provided for update")

	// ErrUnauthorized is returned when the API key is invalid or revoked.
	ErrUnauthorized = errors.New("invalid or revoked API key")

	// ErrArticleNotFound is returned when an article does not exist.
	ErrArticleNotFound = errors.New("article not found")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// DocsError is implemented by all SDK errors.
type DocsError interface {
	error
	DocsError() // marker method
}

// APIError represents a non-success HTTP response from the Docs API.
// StatusCode and Body are kept as structured fields so callers can inspect
// failures programmatically; formatting for display is left to the caller.
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

// DocsError implements the DocsError interface.
func (e *APIError) DocsError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 404:
		return target == ErrArticleNotFound
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// ValidationError is a client-side guard failure; no request was issued.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// DocsError implements the DocsError interface.
func (e *ValidationError) DocsError() {}

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

// DocsError implements the DocsError interface.
func (e *NetworkError) DocsError() {}

// wrapError converts internal transport errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Body:       apiErr.Body,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err: netErr.Err,
			URL: netErr.URL,
		}
	}

	return err
}
