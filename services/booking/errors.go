package booking

import "errors"

var (
	ErrSessionNotFound   = errors.New("booking session not found or expired")
	ErrInvalidTransition = errors.New("invalid booking state transition")
	ErrConcurrentUpdate  = errors.New("booking session was modified concurrently")
	ErrNotEligible       = errors.New("cruise is not eligible for live booking")
	ErrInvalidInput      = errors.New("invalid booking input")
	ErrUnknownRateCode   = errors.New("unknown rate code")
	ErrCabinNotFound     = errors.New("cabin not found in session")
	ErrActionFailed      = errors.New("booking action failed")
)
