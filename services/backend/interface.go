// Package backend is the client for the cruise/pricing REST API that owns
// cruise, pricing and booking-session data.
package backend

import (
	"context"

	"zipsea/models"
)

// Client is the set of backend calls the frontend makes.
type Client interface {
	GetComprehensiveCruise(ctx context.Context, cruiseID int) (*models.Cruise, error)
	GetCruiseBySlug(ctx context.Context, slug string) (*models.Cruise, error)
	GetBasicCruise(ctx context.Context, cruiseID int) (*models.Cruise, error)
	ListCruises(ctx context.Context, filter models.CruiseFilter) ([]models.CruiseSummary, error)

	CreateBookingSession(ctx context.Context, req SessionRequest) (string, error)
	GetLivePricing(ctx context.Context, sessionID string, cruiseID int, category models.CabinCategory) (*models.LivePricing, error)
	SelectCabin(ctx context.Context, req SelectCabinRequest) (*models.Reservation, error)
	UpdateSessionFlag(ctx context.Context, sessionID string, hold bool) error
}

// SessionRequest creates a booking session on the backend.
type SessionRequest struct {
	CruiseID   int               `json:"cruiseId"`
	Passengers models.Passengers `json:"passengerCount"`
}

// SelectCabinRequest reserves a cabin inside a backend booking session.
type SelectCabinRequest struct {
	SessionID string `json:"sessionId"`
	CruiseID  int    `json:"cruiseId"`
	ResultNo  string `json:"resultNo"`
	GradeNo   string `json:"gradeNo"`
	RateCode  string `json:"rateCode"`
	CabinCode string `json:"cabinCode,omitempty"`
}
