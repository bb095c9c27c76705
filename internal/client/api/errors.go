package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable wraps transport-level failures: the request never
	// produced an HTTP response.
	ErrUnavailable = errors.New("story service unavailable")

	// ErrUnauthorized matches 401/403 responses: a missing, invalid, or
	// expired token, or an operation the token does not permit.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound matches 404 responses.
	ErrNotFound = errors.New("not found")

	// ErrBadResponse marks a 2xx response whose body could not be decoded
	// or fails shape validation (e.g. a story record without an id).
	ErrBadResponse = errors.New("malformed api response")
)

// StatusError is returned for any non-2xx HTTP response. It satisfies
// errors.Is for ErrUnauthorized (401, 403) and ErrNotFound (404) so callers
// rarely need to inspect the code directly.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (%d): %s", http.StatusText(e.StatusCode), e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: %s (%d)", http.StatusText(e.StatusCode), e.StatusCode)
}

func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}
