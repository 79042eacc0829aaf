package remote

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnauthorized = errors.New("not authorized; run `rnote auth login`")
	ErrNotFound     = errors.New("not found")
	ErrNoToken      = errors.New("no auth token configured; run `rnote auth login`")
)

// APIError is a non-2xx reply from the note service.
type APIError struct {
	Status    int
	Code      string
	Message   string
	RequestID string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if e.Code != "" {
		return fmt.Sprintf("note service: %s (%d %s)", msg, e.Status, e.Code)
	}
	return fmt.Sprintf("note service: %s (%d)", msg, e.Status)
}

// Unwrap maps well-known statuses onto the package sentinels so callers can
// use errors.Is.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return nil
	}
}
