package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"article-query/internal/logger"
	"article-query/internal/metrics"
)

// Cache is a JSON read-through cache over Redis.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a Cache with the given TTL for all entries.
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get unmarshals the cached value for key into dest. It returns false
// on a miss; Redis failures are logged and reported as misses so reads
// fall through to storage.
func (c *Cache) Get(ctx context.Context, kind, key string, dest interface{}) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.ObserveCache(kind, "miss")
			return false
		}
		metrics.ObserveCache(kind, "error")
		logger.Warn("cache get failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		metrics.ObserveCache(kind, "error")
		logger.Warn("cache entry corrupt, treating as miss",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return false
	}

	metrics.ObserveCache(kind, "hit")
	return true
}

// Set stores value under key with the cache TTL. Failures are logged
// and dropped; a missed fill only costs a future storage read.
func (c *Cache) Set(ctx context.Context, kind, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Warn("cache marshal failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		metrics.ObserveCache(kind, "error")
		logger.Warn("cache set failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
}
