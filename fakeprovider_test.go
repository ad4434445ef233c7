package orchestrator

import (
	"context"
	"errors"
)

// fakeProvider is an in-memory Provider used across the test suite. It can
// be configured to fail a fixed number of times before succeeding, or to
// always fail, without making any network calls.
type fakeProvider struct {
	text        string
	failCount   int
	calls       int
	alwaysFail  bool
	inputTokens int
	outputTok   int
}

func (f *fakeProvider) Generate(ctx context.Context, apiKey, model, system, user string, maxTokens int) (LLMResult, error) {
	f.calls++
	if f.alwaysFail || f.calls <= f.failCount {
		return LLMResult{}, errors.New("fake provider failure")
	}
	return LLMResult{
		Text:         f.text,
		Provider:     ProviderOpenAI,
		Model:        model,
		InputTokens:  f.inputTokens,
		OutputTokens: f.outputTok,
	}, nil
}
