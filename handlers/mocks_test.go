package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"zipsea/models"
	"zipsea/services/booking"
)

type mockCruiseService struct{ mock.Mock }

func (m *mockCruiseService) GetCruisePage(ctx context.Context, rawSlug string) (*models.CruisePage, error) {
	args := m.Called(ctx, rawSlug)
	page, _ := args.Get(0).(*models.CruisePage)
	return page, args.Error(1)
}

func (m *mockCruiseService) ListCruises(ctx context.Context, filter models.CruiseFilter) ([]models.CruiseCard, error) {
	args := m.Called(ctx, filter)
	cards, _ := args.Get(0).([]models.CruiseCard)
	return cards, args.Error(1)
}

func (m *mockCruiseService) Invalidate(ctx context.Context, cruiseID int) error {
	return m.Called(ctx, cruiseID).Error(0)
}

type mockBookingService struct{ mock.Mock }

func (m *mockBookingService) response(args mock.Arguments) (*models.BookingResponse, error) {
	resp, _ := args.Get(0).(*models.BookingResponse)
	return resp, args.Error(1)
}

func (m *mockBookingService) StartSession(ctx context.Context, in booking.StartSessionInput) (*models.BookingResponse, error) {
	return m.response(m.Called(ctx, in))
}

func (m *mockBookingService) Get(ctx context.Context, id string) (*models.BookingResponse, error) {
	return m.response(m.Called(ctx, id))
}

func (m *mockBookingService) RefreshPricing(ctx context.Context, id string, passengers *models.Passengers) (*models.BookingResponse, error) {
	return m.response(m.Called(ctx, id, passengers))
}

func (m *mockBookingService) SelectRateCode(ctx context.Context, id, rateCode string) (*models.BookingResponse, error) {
	return m.response(m.Called(ctx, id, rateCode))
}

func (m *mockBookingService) Reserve(ctx context.Context, id, resultNo string) (*models.BookingResponse, error) {
	return m.response(m.Called(ctx, id, resultNo))
}

func (m *mockBookingService) UpdateFlag(ctx context.Context, id string, hold bool) (*models.BookingResponse, error) {
	return m.response(m.Called(ctx, id, hold))
}

func (m *mockBookingService) Cancel(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockQuoteService struct{ mock.Mock }

func (m *mockQuoteService) Submit(ctx context.Context, q models.QuoteRequest) (*models.QuoteReceipt, error) {
	args := m.Called(ctx, q)
	r, _ := args.Get(0).(*models.QuoteReceipt)
	return r, args.Error(1)
}

func (m *mockQuoteService) List(ctx context.Context, limit int) ([]models.QuoteRequest, error) {
	args := m.Called(ctx, limit)
	qs, _ := args.Get(0).([]models.QuoteRequest)
	return qs, args.Error(1)
}

func (m *mockQuoteService) Get(ctx context.Context, id string) (*models.QuoteRequest, error) {
	args := m.Called(ctx, id)
	q, _ := args.Get(0).(*models.QuoteRequest)
	return q, args.Error(1)
}

type mockFeedService struct{ mock.Mock }

func (m *mockFeedService) Blocks(ctx context.Context) ([]models.FeedBlock, error) {
	args := m.Called(ctx)
	b, _ := args.Get(0).([]models.FeedBlock)
	return b, args.Error(1)
}
