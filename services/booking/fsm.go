package booking

import (
	"fmt"
	"time"

	"zipsea/models"
)

var transitions = map[models.BookingState][]models.BookingState{
	models.StateIdle:            {models.StateSessionCreating},
	models.StateSessionCreating: {models.StatePricingLoading, models.StateFailed},
	models.StatePricingLoading:  {models.StatePricingReady, models.StateFailed},
	models.StatePricingReady:    {models.StatePricingLoading, models.StateReserving},
	models.StateReserving:       {models.StateReserved, models.StateFailed},
	models.StateFailed:          {models.StateSessionCreating, models.StatePricingLoading},
}

// CanTransition reports whether a session may move from one state to another.
func CanTransition(from, to models.BookingState) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Transition moves the session to state to, or returns ErrInvalidTransition
// leaving it untouched.
func Transition(s *models.BookingSession, to models.BookingState) error {
	if !CanTransition(s.State, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.State, to)
	}
	s.State = to
	s.UpdatedAt = time.Now().UTC()
	if to != models.StateFailed {
		s.LastError = ""
	}
	return nil
}

// InFlight reports whether a backend call owns the session.
func InFlight(state models.BookingState) bool {
	switch state {
	case models.StateSessionCreating, models.StatePricingLoading, models.StateReserving:
		return true
	}
	return false
}
