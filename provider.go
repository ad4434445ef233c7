package orchestrator

import "context"

// Provider abstracts one vendor's LLM HTTP API behind a single operation.
// Implementations normalize their response into LLMResult and report
// CostUSD=0 when they don't compute cost themselves, leaving imputation to
// the usage aggregator (see pricing.go).
type Provider interface {
	Generate(ctx context.Context, apiKey, model, system, user string, maxTokens int) (LLMResult, error)
}

// Registry resolves a provider name (as found before the ":" in a stage's
// Model string) to a Provider implementation.
type Registry interface {
	Get(name string) (Provider, bool)
}

// MapRegistry is a Registry backed by a plain map.
type MapRegistry map[string]Provider

func (m MapRegistry) Get(name string) (Provider, bool) {
	p, ok := m[name]
	return p, ok
}

// Recognized provider names.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGoogle    = "google"
	ProviderGroq      = "groq"
	ProviderMistral   = "mistral"
)

// splitModel parses a "<provider>:<model-id>" identifier. An absent colon
// defaults the provider to "openai".
func splitModel(full string) (provider, model string) {
	for i := 0; i < len(full); i++ {
		if full[i] == ':' {
			return full[:i], full[i+1:]
		}
	}
	return ProviderOpenAI, full
}
