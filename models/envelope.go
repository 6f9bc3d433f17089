package models

// Envelope is the JSON wrapper used by the backend API and by this
// service's own JSON endpoints.
type Envelope[T any] struct {
	Success bool           `json:"success"`
	Data    T              `json:"data,omitempty"`
	Error   *EnvelopeError `json:"error,omitempty"`
}

type EnvelopeError struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
