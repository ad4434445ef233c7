package providers

import "github.com/debait-dev/orchestrator"

// DefaultRegistry wires every built-in provider under its canonical name.
// Callers pass the result through PipelineInput.Registry; Run itself never
// constructs one, to keep the root package free of this package's imports.
func DefaultRegistry() orchestrator.MapRegistry {
	return orchestrator.MapRegistry{
		orchestrator.ProviderOpenAI:    NewOpenAIProvider(""),
		orchestrator.ProviderAnthropic: NewAnthropicProvider(),
		orchestrator.ProviderGoogle:    NewGoogleProvider(),
		orchestrator.ProviderGroq:      NewGroqProvider(),
		orchestrator.ProviderMistral:   NewMistralProvider(),
	}
}
