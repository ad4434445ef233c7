package providers

import (
	"testing"

	"github.com/debait-dev/orchestrator"
)

func TestDefaultRegistry_WiresEveryBuiltinProvider(t *testing.T) {
	reg := DefaultRegistry()

	for _, name := range []string{
		orchestrator.ProviderOpenAI,
		orchestrator.ProviderAnthropic,
		orchestrator.ProviderGoogle,
		orchestrator.ProviderGroq,
		orchestrator.ProviderMistral,
	} {
		if _, ok := reg.Get(name); !ok {
			t.Errorf("expected registry to resolve provider %q", name)
		}
	}
}

func TestDefaultRegistry_UnknownProviderNotFound(t *testing.T) {
	reg := DefaultRegistry()
	if _, ok := reg.Get("does-not-exist"); ok {
		t.Error("expected unknown provider name to report not found")
	}
}
