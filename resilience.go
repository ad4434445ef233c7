package orchestrator

import (
	"context"
	"fmt"
	"math"
	"time"
)

type callWithResilienceArgs struct {
	provider     Provider
	providerName string
	apiKey       string
	model        string
	system       string
	user         string
	maxTokens    int
	cfg          ExecutionConfig
	logger       Logger
}

// callWithResilience wraps one provider call with a wall-clock timeout per
// attempt and bounded retries with exponential backoff. Total attempts is
// cfg.RetriesPerStage+1. Backoff before attempt k (0-indexed) sleeps
// min(0.8*2^(k-1), 3.0) seconds; there is no sleep before the first attempt
// or after the final failed attempt. Latency accumulates across every
// attempt, including failed ones.
func callWithResilience(ctx context.Context, a callWithResilienceArgs) (*LLMResult, Runtime) {
	if a.logger == nil {
		a.logger = NoopLogger{}
	}

	attempts := a.cfg.RetriesPerStage + 1
	var lastErr string
	var totalLatencyMS int64

	var limiter RateLimiter
	if a.cfg.RateLimits != nil {
		limiter = a.cfg.RateLimits[a.providerName]
	}

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(math.Min(0.8*math.Pow(2, float64(attempt-1)), 3.0) * float64(time.Second))
			select {
			case <-ctx.Done():
				totalLatencyMS += 0
				return nil, Runtime{
					LatencyMS: totalLatencyMS,
					Retries:   attempt,
					Status:    "failed",
					Error:     ctx.Err().Error(),
				}
			case <-time.After(delay):
			}
		}

		started := time.Now()

		if limiter != nil && !limiter.Allow(ctx, a.providerName) {
			elapsed := time.Since(started).Milliseconds()
			totalLatencyMS += elapsed
			lastErr = (&CodedError{Code: ErrCodeRateLimited, Message: "rate limit exceeded"}).Error()
			a.logger.Warn(ctx, "rate limit exceeded", F("provider", a.providerName), F("attempt", attempt+1))
			continue
		}

		attemptCtx, cancel := context.WithTimeout(ctx, a.cfg.StageTimeout)
		result, err := a.provider.Generate(attemptCtx, a.apiKey, a.model, a.system, a.user, a.maxTokens)
		elapsed := time.Since(started).Milliseconds()
		cancel()
		totalLatencyMS += elapsed

		if err == nil {
			return &result, Runtime{LatencyMS: totalLatencyMS, Retries: attempt, Status: "ok"}
		}

		if attemptCtx.Err() == context.DeadlineExceeded {
			lastErr = (&CodedError{Code: ErrCodeProviderTimeout, Message: "stage timed out", Err: err}).Error()
		} else {
			lastErr = fmt.Sprintf("%T: %v", err, err)
		}
		a.logger.Debug(ctx, "provider attempt failed",
			F("provider", a.providerName), F("attempt", attempt+1), F("error", lastErr))
	}

	return nil, Runtime{
		LatencyMS: totalLatencyMS,
		Retries:   maxInt(0, attempts-1),
		Status:    "failed",
		Error:     lastErr,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
