package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"zipsea/config"
)

var (
	// CacheClient holds cached cruise pages.
	CacheClient *redis.Client
	// SessionClient holds booking sessions.
	SessionClient *redis.Client
)

func newRedisClient(db int, name string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", name, err)
	}
	return client
}

// InitCache initializes the cruise page cache client.
func InitCache() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "Cache")
}

// GetCacheClient returns the cruise page cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitSessionStore initializes the booking session client.
func InitSessionStore() {
	SessionClient = newRedisClient(config.AppConfig.RedisSessionDB, "Sessions")
}

// GetSessionClient returns the booking session client.
func GetSessionClient() *redis.Client {
	if SessionClient == nil {
		InitSessionStore()
	}
	return SessionClient
}
