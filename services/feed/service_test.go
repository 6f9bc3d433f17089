package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"zipsea/models"
)

type fakeLister struct {
	cards map[models.CabinCategory][]models.CruiseCard
	err   map[models.CabinCategory]error
	calls chan models.CruiseFilter
}

func (f *fakeLister) ListCruises(_ context.Context, filter models.CruiseFilter) ([]models.CruiseCard, error) {
	if f.calls != nil {
		f.calls <- filter
	}
	if err := f.err[filter.Category]; err != nil {
		return nil, err
	}
	return f.cards[filter.Category], nil
}

func card(id int, from string) models.CruiseCard {
	return models.CruiseCard{Summary: models.CruiseSummary{ID: id}, FromText: from}
}

func setupService(t *testing.T, lister Lister) (*Service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewService(lister, NewRedisFeedCache(client, time.Hour), zap.NewNop()), mr
}

func TestRefresh_OrdersAndFiltersRows(t *testing.T) {
	lister := &fakeLister{
		cards: map[models.CabinCategory][]models.CruiseCard{
			models.CategorySuite:    {card(4, "$4,999")},
			models.CategoryInterior: {card(1, "$499"), card(2, "")},
			models.CategoryBalcony:  {card(3, "")},
		},
		err: map[models.CabinCategory]error{
			models.CategoryOceanview: errors.New("backend down"),
		},
	}
	svc, mr := setupService(t, lister)

	blocks, err := svc.Refresh(context.Background())

	require.NoError(t, err)
	require.Len(t, blocks, 2, "failed and unpriced rows are dropped")
	assert.Equal(t, models.CategoryInterior, blocks[0].Category)
	assert.Len(t, blocks[0].Cards, 1)
	assert.Equal(t, models.CategorySuite, blocks[1].Category)
	assert.True(t, mr.Exists("feed:blocks:interior"))
	assert.False(t, mr.Exists("feed:blocks:balcony"))
	assert.False(t, mr.Exists("feed:blocks:oceanview"))
}

func TestRefresh_AllRowsFail(t *testing.T) {
	boom := errors.New("backend down")
	lister := &fakeLister{err: map[models.CabinCategory]error{}}
	for _, c := range models.CabinCategories {
		lister.err[c] = boom
	}
	svc, _ := setupService(t, lister)

	_, err := svc.Refresh(context.Background())

	assert.ErrorIs(t, err, boom)
}

func TestBlocks_ServesCache(t *testing.T) {
	lister := &fakeLister{
		cards: map[models.CabinCategory][]models.CruiseCard{
			models.CategoryBalcony: {card(3, "$1,299")},
		},
		calls: make(chan models.CruiseFilter, 16),
	}
	svc, _ := setupService(t, lister)

	first, err := svc.Blocks(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Len(t, lister.calls, len(models.CabinCategories))

	second, err := svc.Blocks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Len(t, lister.calls, len(models.CabinCategories), "second read must come from cache")
}

func TestStartFeedCron_StopsOnCancel(t *testing.T) {
	lister := &fakeLister{calls: make(chan models.CruiseFilter, 64)}
	svc, _ := setupService(t, lister)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		StartFeedCron(ctx, svc, time.Hour)
		close(done)
	}()

	for i := 0; i < len(models.CabinCategories); i++ {
		select {
		case f := <-lister.calls:
			assert.Equal(t, blockSize, f.Limit)
		case <-time.After(time.Second):
			t.Fatal("initial refresh did not run")
		}
	}
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cron did not stop")
	}
}
