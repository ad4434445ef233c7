// Package ratelimit provides concrete orchestrator.RateLimiter
// implementations: an in-process per-key token bucket and a Redis-backed
// distributed one.
package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// TokenBucket rate-limits per key using an independent golang.org/x/time/rate
// limiter for each key value, created lazily on first use.
type TokenBucket struct {
	requestsPerSecond float64
	burst             int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewTokenBucket builds a TokenBucket allowing requestsPerSecond sustained
// requests per key, with burst capacity for short spikes.
func NewTokenBucket(requestsPerSecond float64, burst int) *TokenBucket {
	if burst < 1 {
		burst = 1
	}
	return &TokenBucket{
		requestsPerSecond: requestsPerSecond,
		burst:             burst,
		limiters:          make(map[string]*rate.Limiter),
	}
}

// Allow reports whether a call for key may proceed right now. ctx is
// accepted for interface symmetry with the distributed limiter; the
// in-process limiter never blocks on it.
func (tb *TokenBucket) Allow(ctx context.Context, key string) bool {
	return tb.limiterFor(key).Allow()
}

func (tb *TokenBucket) limiterFor(key string) *rate.Limiter {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	l, ok := tb.limiters[key]
	if !ok {
		l = rate.NewLimiter(rate.Limit(tb.requestsPerSecond), tb.burst)
		tb.limiters[key] = l
	}
	return l
}

