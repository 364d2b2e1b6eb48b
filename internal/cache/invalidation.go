package cache

import (
	"context"
	"log/slog"

	"article-query/internal/logger"
	"article-query/internal/metrics"
)

// scanBatch limits keys fetched per SCAN round trip.
const scanBatch = 100

// Invalidate deletes every key matching the given patterns. It iterates
// with SCAN rather than KEYS so it never blocks Redis, and returns how
// many keys were removed. Failures are logged and swallowed: a stale
// entry expires by TTL anyway.
func (c *Cache) Invalidate(ctx context.Context, kind string, patterns ...string) int {
	invalidated := 0

	for _, pattern := range patterns {
		var cursor uint64
		for {
			keys, next, err := c.client.Scan(ctx, cursor, pattern, scanBatch).Result()
			if err != nil {
				logger.Warn("cache scan failed",
					slog.String("pattern", pattern),
					slog.String("error", err.Error()))
				break
			}
			if len(keys) > 0 {
				deleted, err := c.client.Del(ctx, keys...).Result()
				if err != nil {
					logger.Warn("cache delete failed",
						slog.String("pattern", pattern),
						slog.String("error", err.Error()))
				} else {
					invalidated += int(deleted)
				}
			}
			cursor = next
			if cursor == 0 {
				break
			}
		}
	}

	metrics.ObserveInvalidation(kind, invalidated)
	return invalidated
}
