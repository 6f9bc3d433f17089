package handlers

import (
	"context"

	"zipsea/models"
	"zipsea/services/booking"
)

// CruiseService is what the page and cruise API handlers need.
type CruiseService interface {
	GetCruisePage(ctx context.Context, rawSlug string) (*models.CruisePage, error)
	ListCruises(ctx context.Context, filter models.CruiseFilter) ([]models.CruiseCard, error)
}

// CruiseCache lets staff drop a stale cached cruise.
type CruiseCache interface {
	Invalidate(ctx context.Context, cruiseID int) error
}

// FeedService serves the home page rows.
type FeedService interface {
	Blocks(ctx context.Context) ([]models.FeedBlock, error)
}

type BookingService interface {
	StartSession(ctx context.Context, in booking.StartSessionInput) (*models.BookingResponse, error)
	Get(ctx context.Context, id string) (*models.BookingResponse, error)
	RefreshPricing(ctx context.Context, id string, passengers *models.Passengers) (*models.BookingResponse, error)
	SelectRateCode(ctx context.Context, id, rateCode string) (*models.BookingResponse, error)
	Reserve(ctx context.Context, id, resultNo string) (*models.BookingResponse, error)
	UpdateFlag(ctx context.Context, id string, hold bool) (*models.BookingResponse, error)
	Cancel(ctx context.Context, id string) error
}

type QuoteService interface {
	Submit(ctx context.Context, q models.QuoteRequest) (*models.QuoteReceipt, error)
	List(ctx context.Context, limit int) ([]models.QuoteRequest, error)
	Get(ctx context.Context, id string) (*models.QuoteRequest, error)
}
