package cruise

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"zipsea/models"
)

func TestListCruises(t *testing.T) {
	svc, api, _ := setupService(t, models.LiveBookingConfig{})
	summaries := []models.CruiseSummary{
		{ID: 2143102, ShipName: "Symphony of the Seas", SailingDate: "2025-10-05", CheapestPrice: models.NewAmount(899), BalconyPrice: models.NewAmount(1499.5), ShipImageURL: "ship.jpg"},
		{ID: 7, ShipName: "Wonder", SailingDate: "2026-01-10"},
	}
	filter := models.CruiseFilter{Category: models.CategoryBalcony, Limit: defaultPageSize}
	api.On("ListCruises", mock.Anything, filter).Return(summaries, nil).Once()

	cards, err := svc.ListCruises(context.Background(), models.CruiseFilter{Category: models.CategoryBalcony})

	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "/cruise/symphony-of-the-seas-2025-10-05-2143102", cards[0].URL)
	assert.Equal(t, "$1,500", cards[0].FromText)
	assert.Equal(t, "https://cdn.test/ship.jpg", cards[0].ImageURL)
	assert.Equal(t, "/cruise/wonder-2026-01-10-7", cards[1].URL)
	assert.Empty(t, cards[1].FromText)
}

func TestListCruises_ClampsLimit(t *testing.T) {
	svc, api, _ := setupService(t, models.LiveBookingConfig{})
	api.On("ListCruises", mock.Anything, models.CruiseFilter{Limit: maxPageSize}).Return(nil, nil).Once()

	cards, err := svc.ListCruises(context.Background(), models.CruiseFilter{Limit: 1000, Offset: -4})

	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestListCruises_BackendError(t *testing.T) {
	svc, api, _ := setupService(t, models.LiveBookingConfig{})
	api.On("ListCruises", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

	_, err := svc.ListCruises(context.Background(), models.CruiseFilter{})

	assert.Error(t, err)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$899", FormatPrice(models.NewAmount(899)))
	assert.Equal(t, "$12,345", FormatPrice(models.NewAmount(12345.2)))
	assert.Equal(t, "", FormatPrice(models.Amount{}))
	assert.Equal(t, "", FormatPrice(models.NewAmount(0)))
}
