package orchestrator

import "context"

// RateLimiter gates provider calls. Allow reports whether a call may
// proceed now, without blocking; the resilience wrapper reports a denial
// as a normal failed attempt rather than a stall.
//
// Concrete implementations (in-process token bucket, Redis-backed
// distributed fixed-window counter) live in the ratelimit package to keep this
// package free of the Redis client dependency for callers who don't need
// it.
type RateLimiter interface {
	Allow(ctx context.Context, key string) bool
}
