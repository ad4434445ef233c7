package orchestrator

import "math"

// PriceRow is the USD-per-million-token price for one provider.
type PriceRow struct {
	InputPer1M  float64
	OutputPer1M float64
}

// PricingTable maps provider name to its PriceRow. It is passed as data
// rather than baked in as constants, per the design note that pricing will
// drift from vendor reality and should stay configurable.
type PricingTable map[string]PriceRow

// DefaultPricingTable returns the snapshot pricing table.
func DefaultPricingTable() PricingTable {
	return PricingTable{
		ProviderOpenAI:    {InputPer1M: 0.50, OutputPer1M: 1.50},
		ProviderAnthropic: {InputPer1M: 0.80, OutputPer1M: 4.00},
		ProviderGoogle:    {InputPer1M: 0.35, OutputPer1M: 1.05},
		ProviderGroq:      {InputPer1M: 0.10, OutputPer1M: 0.30},
		ProviderMistral:   {InputPer1M: 0.20, OutputPer1M: 0.60},
	}
}

func round6(v float64) float64 {
	return math.Round(v*1_000_000) / 1_000_000
}

// imputeCost returns result.CostUSD verbatim when positive; otherwise it
// imputes cost from the pricing table, falling back to the openai row for
// an unrecognized provider name.
func imputeCost(table PricingTable, result LLMResult) float64 {
	if result.CostUSD > 0 {
		return result.CostUSD
	}
	row, ok := table[result.Provider]
	if !ok {
		row = table[ProviderOpenAI]
	}
	cost := (float64(result.InputTokens)*row.InputPer1M + float64(result.OutputTokens)*row.OutputPer1M) / 1_000_000
	return round6(cost)
}

// payload builds a UsagePayload from a successful (or degraded) LLMResult
// and the runtime record of the call that produced it.
func payload(table PricingTable, result LLMResult, rt Runtime) UsagePayload {
	return UsagePayload{
		Text:         result.Text,
		Provider:     result.Provider,
		Model:        result.Model,
		InputTokens:  result.InputTokens,
		OutputTokens: result.OutputTokens,
		CostUSD:      imputeCost(table, result),
		LatencyMS:    rt.LatencyMS,
		Retries:      rt.Retries,
		Status:       rt.Status,
	}
}
