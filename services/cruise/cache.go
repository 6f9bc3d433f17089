package cruise

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-redis/redis/v8"

	"zipsea/models"
	"zipsea/utils"
)

var ErrCacheMiss = errors.New("cache miss")

// Lookup is the outcome of the tiered backend lookup for one cruise.
type Lookup struct {
	Cruise  models.Cruise `json:"cruise"`
	Limited bool          `json:"limited"`
}

// PageCache stores lookups by cruise ID.
type PageCache interface {
	Get(ctx context.Context, cruiseID int) (*Lookup, error)
	Set(ctx context.Context, cruiseID int, lookup *Lookup) error
	Delete(ctx context.Context, cruiseID int) error
}

// RedisPageCache keeps lookups in Redis under cruise:page:<id>.
type RedisPageCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func NewRedisPageCache(client *redis.Client, ttl time.Duration) *RedisPageCache {
	return &RedisPageCache{client: client, baseTTL: ttl}
}

func (r *RedisPageCache) Get(ctx context.Context, cruiseID int) (*Lookup, error) {
	data, err := r.client.Get(ctx, cacheKey(cruiseID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var lookup Lookup
	if err := json.Unmarshal(data, &lookup); err != nil {
		return nil, fmt.Errorf("unmarshal cruise failed: %w", err)
	}
	return &lookup, nil
}

// Set stores the lookup. Limited lookups live for a fifth of the TTL so the
// full record is retried sooner.
func (r *RedisPageCache) Set(ctx context.Context, cruiseID int, lookup *Lookup) error {
	data, err := json.Marshal(lookup)
	if err != nil {
		return fmt.Errorf("marshal cruise failed: %w", err)
	}

	ttl := r.baseTTL
	if lookup.Limited {
		ttl /= 5
	}
	if ttl >= time.Minute {
		ttl += time.Duration(rand.Int63n(int64(ttl / 10)))
	}
	if err := r.client.Set(ctx, cacheKey(cruiseID), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisPageCache) Delete(ctx context.Context, cruiseID int) error {
	if err := r.client.Del(ctx, cacheKey(cruiseID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func cacheKey(cruiseID int) string {
	return fmt.Sprintf("%s%d", utils.CruisePageCachePrefix, cruiseID)
}
