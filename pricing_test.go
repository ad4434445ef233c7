package orchestrator

import "testing"

func TestImputeCost_UsesVerbatimCostWhenPositive(t *testing.T) {
	table := DefaultPricingTable()
	result := LLMResult{Provider: ProviderOpenAI, CostUSD: 0.1234}

	if got := imputeCost(table, result); got != 0.1234 {
		t.Errorf("got %v, want 0.1234", got)
	}
}

func TestImputeCost_ImputesFromTableWhenZero(t *testing.T) {
	table := DefaultPricingTable()
	result := LLMResult{Provider: ProviderOpenAI, InputTokens: 1_000_000, OutputTokens: 1_000_000}

	got := imputeCost(table, result)
	want := table[ProviderOpenAI].InputPer1M + table[ProviderOpenAI].OutputPer1M
	if got != round6(want) {
		t.Errorf("got %v, want %v", got, round6(want))
	}
}

func TestImputeCost_FallsBackToOpenAIRowForUnknownProvider(t *testing.T) {
	table := DefaultPricingTable()
	result := LLMResult{Provider: "unknown-vendor", InputTokens: 1_000_000}

	got := imputeCost(table, result)
	want := round6(table[ProviderOpenAI].InputPer1M)
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRound6(t *testing.T) {
	if got := round6(0.123456789); got != 0.123457 {
		t.Errorf("got %v, want 0.123457", got)
	}
}
