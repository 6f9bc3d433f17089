package backend

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound means the backend has no such record.
	ErrNotFound = errors.New("backend: not found")
	// ErrUpstream means the backend failed or rejected the call.
	ErrUpstream = errors.New("backend: upstream error")
)

// APIError carries the backend's error envelope.
type APIError struct {
	Status  int
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("backend status %d: %s (%s)", e.Status, e.Message, e.Details)
	}
	return fmt.Sprintf("backend status %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	if e.Status == http.StatusNotFound {
		return ErrNotFound
	}
	return ErrUpstream
}
