package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"article-query/internal/logger"
)

// RateLimitRule caps one route at Limit requests per Window.
type RateLimitRule struct {
	Limit  int
	Window time.Duration
}

// RateLimitInfo describes the state of a caller's quota after a check.
type RateLimitInfo struct {
	Limit     int
	Remaining int
	Reset     int64 // unix seconds when the current window ends
}

// RateLimitStore is the counter backend for the rate limiter. Keys are
// per caller, route, and window; counters must expire on their own so
// idle callers cost nothing.
type RateLimitStore interface {
	Count(ctx context.Context, key string) (int64, error)
	Increment(ctx context.Context, key string, expire time.Duration) error
}

// RedisRateLimitStore implements RateLimitStore on Redis.
type RedisRateLimitStore struct {
	client *redis.Client
}

// NewRedisRateLimitStore creates a new RedisRateLimitStore.
func NewRedisRateLimitStore(client *redis.Client) *RedisRateLimitStore {
	return &RedisRateLimitStore{client: client}
}

func (s *RedisRateLimitStore) Count(ctx context.Context, key string) (int64, error) {
	count, err := s.client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return count, err
}

func (s *RedisRateLimitStore) Increment(ctx context.Context, key string, expire time.Duration) error {
	pipe := s.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, expire)
	_, err := pipe.Exec(ctx)
	return err
}

// RateLimiter applies a sliding window over two fixed windows: the
// previous window's count is weighted by how much of it still overlaps
// the last Window of wall time. That smooths the burst a caller could
// otherwise fit across a fixed-window boundary.
type RateLimiter struct {
	store RateLimitStore
	now   func() time.Time
}

// NewRateLimiter creates a RateLimiter backed by store.
func NewRateLimiter(store RateLimitStore) *RateLimiter {
	return NewRateLimiterWithClock(store, time.Now)
}

// NewRateLimiterWithClock creates a RateLimiter with an explicit clock,
// for tests.
func NewRateLimiterWithClock(store RateLimitStore, now func() time.Time) *RateLimiter {
	return &RateLimiter{store: store, now: now}
}

// Allow checks identifier's quota on endpoint and, when allowed, counts
// the request against the current window.
func (l *RateLimiter) Allow(ctx context.Context, identifier, endpoint string, rule RateLimitRule) (bool, RateLimitInfo, error) {
	windowSecs := int64(rule.Window / time.Second)
	nowSecs := l.now().Unix()
	currentWindow := nowSecs / windowSecs * windowSecs
	previousWindow := currentWindow - windowSecs

	currentCount, err := l.store.Count(ctx, rateLimitKey(identifier, endpoint, currentWindow))
	if err != nil {
		return false, RateLimitInfo{}, err
	}
	previousCount, err := l.store.Count(ctx, rateLimitKey(identifier, endpoint, previousWindow))
	if err != nil {
		return false, RateLimitInfo{}, err
	}

	elapsed := float64(nowSecs-currentWindow) / float64(windowSecs)
	weighted := float64(currentCount) + float64(previousCount)*(1-elapsed)

	allowed := weighted < float64(rule.Limit)
	if allowed {
		// Counters live for two windows so the sliding calculation can
		// still read them as the previous window.
		if err := l.store.Increment(ctx, rateLimitKey(identifier, endpoint, currentWindow), 2*rule.Window); err != nil {
			return false, RateLimitInfo{}, err
		}
	}

	remaining := rule.Limit - int(weighted)
	if allowed {
		remaining--
	}
	if remaining < 0 {
		remaining = 0
	}

	return allowed, RateLimitInfo{
		Limit:     rule.Limit,
		Remaining: remaining,
		Reset:     currentWindow + windowSecs,
	}, nil
}

func rateLimitKey(identifier, endpoint string, window int64) string {
	return fmt.Sprintf("ratelimit:%s:%s:%d", identifier, endpoint, window)
}

// RateLimit enforces per-route quotas, keyed by "METHOD route-template".
// Authenticated callers are limited per user, anonymous ones per client
// IP; routes without a rule pass through untouched. A failing limiter
// backend lets requests through rather than taking the API down with
// it. Must run after Viewer so the user dimension is available.
func RateLimit(limiter *RateLimiter, rules map[string]RateLimitRule) gin.HandlerFunc {
	return func(c *gin.Context) {
		rule, ok := rules[c.Request.Method+" "+c.FullPath()]
		if !ok {
			c.Next()
			return
		}

		identifier := "ip:" + c.ClientIP()
		if viewer := GetViewer(c); viewer != nil {
			identifier = "user:" + *viewer
		}

		allowed, info, err := limiter.Allow(c.Request.Context(), identifier, c.FullPath(), rule)
		if err != nil {
			logger.Warn("rate limit check failed, allowing request",
				slog.String("identifier", identifier),
				slog.String("error", err.Error()))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(info.Reset, 10))

		if !allowed {
			retryAfter := info.Reset - time.Now().Unix()
			if retryAfter < 0 {
				retryAfter = 0
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": retryAfter,
			})
			return
		}

		c.Next()
	}
}
