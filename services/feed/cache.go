package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"zipsea/models"
)

const cacheKeyPrefix = "feed:blocks:"

// RedisFeedCache keeps one key per category so a failed refresh of one row
// leaves the others in place.
type RedisFeedCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisFeedCache(client *redis.Client, ttl time.Duration) *RedisFeedCache {
	return &RedisFeedCache{client: client, ttl: ttl}
}

func blockKey(c models.CabinCategory) string {
	return fmt.Sprintf("%s%s", cacheKeyPrefix, c)
}

func (c *RedisFeedCache) CacheBlocks(ctx context.Context, blocks []models.FeedBlock) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, b := range blocks {
			data, err := json.Marshal(b)
			if err != nil {
				return err
			}
			pipe.Set(ctx, blockKey(b.Category), data, c.ttl)
		}
		return nil
	})
	return err
}

// GetCachedBlocks returns cached rows in display order. Missing or corrupt
// rows are skipped.
func (c *RedisFeedCache) GetCachedBlocks(ctx context.Context) ([]models.FeedBlock, error) {
	keys := make([]string, len(models.CabinCategories))
	for i, cat := range models.CabinCategories {
		keys[i] = blockKey(cat)
	}
	vals, err := c.client.MGet(ctx, keys...).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	var blocks []models.FeedBlock
	for _, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var block models.FeedBlock
		if err := json.Unmarshal([]byte(s), &block); err != nil {
			continue
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}
