package cruise

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"zipsea/models"
	"zipsea/services/backend"
	"zipsea/services/backend/mocks"
)

const testSlug = "symphony-of-the-seas-2025-10-05-2143102"

type prefixImager struct{}

func (prefixImager) URL(src string, width int) string {
	return "https://cdn.test/" + src
}

func setupService(t *testing.T, live models.LiveBookingConfig) (*Service, *mocks.MockClient, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	api := mocks.NewMockClient(t)
	svc := NewService(api, NewRedisPageCache(client, 5*time.Minute), prefixImager{}, Options{
		LiveBooking: live,
		SiteURL:     "https://www.zipsea.com",
	}, zap.NewNop())
	return svc, api, mr
}

func comprehensiveCruise(t *testing.T) *models.Cruise {
	t.Helper()
	var c models.Cruise
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 2143102,
		"name": "7 Night Western Caribbean",
		"cruiseLineId": 22,
		"shipName": "Symphony of the Seas",
		"sailingDate": "2025-10-05",
		"nights": 7,
		"pricing": {
			"cheapestPricing": {"interiorPrice": "899.00", "balconyPrice": "1499"},
			"cheapestinsidepricecode": "RC1|B|2",
			"prices": {
				"RC1": {
					"A": {"price": "950", "cabintype": "inside"},
					"B": {"price": "999", "cabintype": "inside"},
					"C": {"price": "1499", "cabintype": "balcony"}
				}
			},
			"cabins": {
				"B": {"name": "Interior Stateroom", "description": "A cozy stateroom with all the essentials you need for a relaxing week at sea, including two twin beds that convert to a queen.", "imageurl": "b.jpg", "imageurlhd": "b-hd.jpg"},
				"C": {"name": "Balcony Stateroom", "description": "Private balcony.", "imageurl": "c.jpg"}
			}
		}
	}`), &c))
	return &c
}

func TestGetCruisePage_Comprehensive(t *testing.T) {
	svc, api, _ := setupService(t, models.NewLiveBookingConfig(true, 22))
	api.On("GetComprehensiveCruise", mock.Anything, 2143102).Return(comprehensiveCruise(t), nil).Once()

	page, err := svc.GetCruisePage(context.Background(), testSlug)

	require.NoError(t, err)
	assert.False(t, page.Limited)
	assert.True(t, page.LiveBookable)
	assert.Equal(t, "https://www.zipsea.com/cruise/"+testSlug, page.CanonicalURL)
	require.Len(t, page.Offers, 4)

	interior := page.Offers[0]
	assert.Equal(t, models.CategoryInterior, interior.Category)
	require.NotNil(t, interior.Offer.Price)
	assert.Equal(t, 899.0, *interior.Offer.Price)
	require.NotNil(t, interior.Offer.CabinCode)
	assert.Equal(t, "B", *interior.Offer.CabinCode)
	assert.Equal(t, "https://cdn.test/b-hd.jpg", interior.ImageURL)
	assert.Equal(t, 80, interior.OnboardCredit)
	assert.Len(t, []rune(interior.ShortDescription), 123)

	balcony := page.Offers[2]
	require.NotNil(t, balcony.Offer.CabinCode)
	assert.Equal(t, "C", *balcony.Offer.CabinCode)
	assert.Equal(t, "Private balcony.", balcony.ShortDescription)

	suite := page.Offers[3]
	assert.Nil(t, suite.Offer.Price)
	assert.Equal(t, 0, suite.OnboardCredit)
}

func TestGetCruisePage_IneligibleLineIsNotLiveBookable(t *testing.T) {
	svc, api, _ := setupService(t, models.NewLiveBookingConfig(true, 3))
	api.On("GetComprehensiveCruise", mock.Anything, 2143102).Return(comprehensiveCruise(t), nil).Once()

	page, err := svc.GetCruisePage(context.Background(), testSlug)

	require.NoError(t, err)
	assert.False(t, page.LiveBookable)
}

func TestGetCruisePage_InvalidSlug(t *testing.T) {
	svc, _, _ := setupService(t, models.LiveBookingConfig{})

	_, err := svc.GetCruisePage(context.Background(), "not-a-cruise")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetCruisePage_FallsBackToSlug(t *testing.T) {
	svc, api, _ := setupService(t, models.LiveBookingConfig{})
	api.On("GetComprehensiveCruise", mock.Anything, 2143102).Return(nil, backend.ErrUpstream).Once()
	api.On("GetCruiseBySlug", mock.Anything, testSlug).Return(comprehensiveCruise(t), nil).Once()

	page, err := svc.GetCruisePage(context.Background(), testSlug)

	require.NoError(t, err)
	assert.False(t, page.Limited)
}

func TestGetCruisePage_LimitedFromBasic(t *testing.T) {
	svc, api, _ := setupService(t, models.NewLiveBookingConfig(true, 22))
	basic := &models.Cruise{ID: 2143102, Name: "7 Night Western Caribbean", CruiseLineID: 22, ShipName: "Symphony of the Seas", SailingDate: "2025-10-05"}
	api.On("GetComprehensiveCruise", mock.Anything, 2143102).Return(nil, backend.ErrNotFound).Once()
	api.On("GetCruiseBySlug", mock.Anything, testSlug).Return(nil, backend.ErrNotFound).Once()
	api.On("GetBasicCruise", mock.Anything, 2143102).Return(basic, nil).Once()

	page, err := svc.GetCruisePage(context.Background(), testSlug)

	require.NoError(t, err)
	assert.True(t, page.Limited)
	assert.False(t, page.LiveBookable)
	assert.Empty(t, page.Offers)
}

func TestGetCruisePage_AllTiersFail(t *testing.T) {
	svc, api, _ := setupService(t, models.LiveBookingConfig{})
	api.On("GetComprehensiveCruise", mock.Anything, 2143102).Return(nil, backend.ErrNotFound).Once()
	api.On("GetCruiseBySlug", mock.Anything, testSlug).Return(nil, backend.ErrUpstream).Once()
	api.On("GetBasicCruise", mock.Anything, 2143102).Return(nil, backend.ErrNotFound).Once()

	_, err := svc.GetCruisePage(context.Background(), testSlug)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetCruisePage_ServesFromCache(t *testing.T) {
	svc, api, mr := setupService(t, models.LiveBookingConfig{})
	api.On("GetComprehensiveCruise", mock.Anything, 2143102).Return(comprehensiveCruise(t), nil).Once()

	_, err := svc.GetCruisePage(context.Background(), testSlug)
	require.NoError(t, err)
	assert.True(t, mr.Exists("cruise:page:2143102"))

	page, err := svc.GetCruisePage(context.Background(), testSlug)
	require.NoError(t, err)
	assert.Equal(t, "Symphony of the Seas", page.Cruise.ShipName)
}

func TestInvalidate_ForcesRefetch(t *testing.T) {
	svc, api, mr := setupService(t, models.LiveBookingConfig{})
	ctx := context.Background()
	api.On("GetComprehensiveCruise", mock.Anything, 2143102).Return(comprehensiveCruise(t), nil).Twice()

	_, err := svc.GetCruisePage(ctx, testSlug)
	require.NoError(t, err)
	require.True(t, mr.Exists("cruise:page:2143102"))

	require.NoError(t, svc.Invalidate(ctx, 2143102))
	assert.False(t, mr.Exists("cruise:page:2143102"))
	require.NoError(t, svc.Invalidate(ctx, 2143102))

	_, err = svc.GetCruisePage(ctx, testSlug)
	require.NoError(t, err)
	assert.True(t, mr.Exists("cruise:page:2143102"))
}

func TestLookup_CollapsesConcurrentMisses(t *testing.T) {
	svc, api, _ := setupService(t, models.LiveBookingConfig{})
	release := make(chan time.Time)
	api.On("GetComprehensiveCruise", mock.Anything, 2143102).
		WaitUntil(release).
		Return(comprehensiveCruise(t), nil).Once()

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Lookup(context.Background(), testSlug, 2143102)
			assert.NoError(t, err)
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
}

func TestLookup_CallerCancellation(t *testing.T) {
	svc, api, _ := setupService(t, models.LiveBookingConfig{})
	release := make(chan time.Time)
	api.On("GetComprehensiveCruise", mock.Anything, 2143102).
		WaitUntil(release).
		Return(comprehensiveCruise(t), nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Lookup(ctx, testSlug, 2143102)
	assert.ErrorIs(t, err, context.Canceled)

	close(release)
	// the shared fetch still completes and fills the cache
	require.Eventually(t, func() bool {
		_, err := svc.cache.Get(context.Background(), 2143102)
		return err == nil
	}, time.Second, 10*time.Millisecond)
}
