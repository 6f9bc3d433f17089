package booking

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zipsea/models"
)

func setupStore(t *testing.T) (*RedisStore, *redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, 30*time.Minute), client, mr
}

func TestRedisStore_CreateGet(t *testing.T) {
	store, _, mr := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &models.BookingSession{ID: "s1", State: models.StateIdle}))
	assert.Error(t, store.Create(ctx, &models.BookingSession{ID: "s1"}))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.StateIdle, got.State)
	assert.Equal(t, 30*time.Minute, mr.TTL("booking:session:s1"))
}

func TestRedisStore_GetMissing(t *testing.T) {
	store, _, _ := setupStore(t)

	_, err := store.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStore_UpdateRefreshesTTL(t *testing.T) {
	store, _, mr := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, &models.BookingSession{ID: "s1", State: models.StateIdle}))
	mr.FastForward(20 * time.Minute)

	got, err := store.Update(ctx, "s1", func(s *models.BookingSession) error {
		return Transition(s, models.StateSessionCreating)
	})

	require.NoError(t, err)
	assert.Equal(t, models.StateSessionCreating, got.State)
	assert.Equal(t, 30*time.Minute, mr.TTL("booking:session:s1"))
}

func TestRedisStore_UpdateAbortsOnError(t *testing.T) {
	store, _, _ := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, &models.BookingSession{ID: "s1", State: models.StateIdle}))

	_, err := store.Update(ctx, "s1", func(s *models.BookingSession) error {
		return Transition(s, models.StateReserved)
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.StateIdle, got.State)
}

func TestRedisStore_UpdateDetectsConcurrentWrite(t *testing.T) {
	store, client, _ := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, &models.BookingSession{ID: "s1", State: models.StateIdle}))

	_, err := store.Update(ctx, "s1", func(s *models.BookingSession) error {
		// another request wins the race
		_, err := store.Update(ctx, "s1", func(other *models.BookingSession) error {
			return Transition(other, models.StateSessionCreating)
		})
		require.NoError(t, err)
		return Transition(s, models.StateSessionCreating)
	})
	assert.ErrorIs(t, err, ErrConcurrentUpdate)

	raw, err := client.Get(ctx, "booking:session:s1").Result()
	require.NoError(t, err)
	assert.Contains(t, raw, `"state":"sessionCreating"`)
}

func TestRedisStore_Delete(t *testing.T) {
	store, _, _ := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, &models.BookingSession{ID: "s1"}))

	require.NoError(t, store.Delete(ctx, "s1"))
	assert.ErrorIs(t, store.Delete(ctx, "s1"), ErrSessionNotFound)
}
