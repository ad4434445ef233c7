package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter rate-limits per key across multiple orchestrator processes
// using a fixed-window counter stored in Redis: INCR the window's key, and
// deny once the count exceeds the configured limit for that window.
type RedisLimiter struct {
	client redis.UniversalClient
	prefix string
	limit  int64
	window time.Duration
}

// NewRedisLimiter connects to addr and builds a RedisLimiter allowing up to
// limit calls per key within each window.
func NewRedisLimiter(addr string, limit int64, window time.Duration) *RedisLimiter {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		PoolSize: 10,
	})
	return NewRedisLimiterWithClient(client, limit, window)
}

// NewRedisLimiterWithClient builds a RedisLimiter over an already-configured
// client, so callers (and tests, via a miniredis-backed client) can control
// connection details directly.
func NewRedisLimiterWithClient(client redis.UniversalClient, limit int64, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: "orchestrator:ratelimit:",
		window: window,
		limit:  limit,
	}
}

// Allow reports whether a call for key may proceed in the current window.
// On any Redis error it fails open, so a transient Redis outage degrades
// to unlimited throughput rather than blocking the pipeline.
func (r *RedisLimiter) Allow(ctx context.Context, key string) bool {
	windowKey := fmt.Sprintf("%s%s:%d", r.prefix, key, time.Now().UnixNano()/int64(r.window))

	count, err := r.client.Incr(ctx, windowKey).Result()
	if err != nil {
		return true
	}
	if count == 1 {
		r.client.Expire(ctx, windowKey, r.window)
	}

	return count <= r.limit
}
