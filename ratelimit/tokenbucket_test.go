package ratelimit

import (
	"context"
	"testing"
)

func TestTokenBucket_AllowWithinBurst(t *testing.T) {
	tb := NewTokenBucket(1.0, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if !tb.Allow(ctx, "stage-a") {
			t.Errorf("request %d should be allowed within burst", i)
		}
	}

	if tb.Allow(ctx, "stage-a") {
		t.Error("request beyond burst should be denied")
	}
}

func TestTokenBucket_PerKeyIndependence(t *testing.T) {
	tb := NewTokenBucket(1.0, 1)
	ctx := context.Background()

	if !tb.Allow(ctx, "a") {
		t.Fatal("first request for key a should be allowed")
	}
	if !tb.Allow(ctx, "b") {
		t.Fatal("first request for key b should be allowed independently of key a")
	}
	if tb.Allow(ctx, "a") {
		t.Error("second immediate request for key a should be denied")
	}
}
