package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"zipsea/models"
	"zipsea/utils"
)

// Store persists booking sessions.
type Store interface {
	Create(ctx context.Context, s *models.BookingSession) error
	Get(ctx context.Context, id string) (*models.BookingSession, error)
	// Update applies fn to the stored session and saves the result only if
	// nobody else wrote it in between. An error from fn aborts the write.
	Update(ctx context.Context, id string, fn func(*models.BookingSession) error) (*models.BookingSession, error)
	Delete(ctx context.Context, id string) error
}

// RedisStore keeps sessions as JSON with a sliding TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return utils.BookingSessionPrefix + id
}

func (r *RedisStore) Create(ctx context.Context, s *models.BookingSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	ok, err := r.client.SetNX(ctx, sessionKey(s.ID), data, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	if !ok {
		return fmt.Errorf("booking session %s already exists", s.ID)
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (*models.BookingSession, error) {
	return r.read(ctx, r.client, id)
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (r *RedisStore) read(ctx context.Context, c getter, id string) (*models.BookingSession, error) {
	data, err := c.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var s models.BookingSession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &s, nil
}

func (r *RedisStore) Update(ctx context.Context, id string, fn func(*models.BookingSession) error) (*models.BookingSession, error) {
	key := sessionKey(id)
	var updated *models.BookingSession

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		s, err := r.read(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := fn(s); err != nil {
			return err
		}
		s.UpdatedAt = time.Now().UTC()
		data, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("failed to marshal booking session: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, r.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		updated = s
		return nil
	}, key)

	if errors.Is(err, redis.TxFailedErr) {
		return nil, ErrConcurrentUpdate
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	n, err := r.client.Del(ctx, sessionKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}
