package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"zipsea/models"
	"zipsea/services/backend"
)

// MockClient is a testify mock of backend.Client.
type MockClient struct {
	mock.Mock
}

var _ backend.Client = (*MockClient)(nil)

// NewMockClient creates a MockClient whose expectations are asserted when
// the test ends.
func NewMockClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClient {
	m := &MockClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func cruiseResult(args mock.Arguments) (*models.Cruise, error) {
	c, _ := args.Get(0).(*models.Cruise)
	return c, args.Error(1)
}

func (m *MockClient) GetComprehensiveCruise(ctx context.Context, cruiseID int) (*models.Cruise, error) {
	return cruiseResult(m.Called(ctx, cruiseID))
}

func (m *MockClient) GetCruiseBySlug(ctx context.Context, slug string) (*models.Cruise, error) {
	return cruiseResult(m.Called(ctx, slug))
}

func (m *MockClient) GetBasicCruise(ctx context.Context, cruiseID int) (*models.Cruise, error) {
	return cruiseResult(m.Called(ctx, cruiseID))
}

func (m *MockClient) ListCruises(ctx context.Context, filter models.CruiseFilter) ([]models.CruiseSummary, error) {
	args := m.Called(ctx, filter)
	out, _ := args.Get(0).([]models.CruiseSummary)
	return out, args.Error(1)
}

func (m *MockClient) CreateBookingSession(ctx context.Context, req backend.SessionRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockClient) GetLivePricing(ctx context.Context, sessionID string, cruiseID int, category models.CabinCategory) (*models.LivePricing, error) {
	args := m.Called(ctx, sessionID, cruiseID, category)
	out, _ := args.Get(0).(*models.LivePricing)
	return out, args.Error(1)
}

func (m *MockClient) SelectCabin(ctx context.Context, req backend.SelectCabinRequest) (*models.Reservation, error) {
	args := m.Called(ctx, req)
	out, _ := args.Get(0).(*models.Reservation)
	return out, args.Error(1)
}

func (m *MockClient) UpdateSessionFlag(ctx context.Context, sessionID string, hold bool) error {
	return m.Called(ctx, sessionID, hold).Error(0)
}
