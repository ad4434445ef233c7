package orchestrator

import (
	"context"
	"testing"
)

func TestRuleBasedGate(t *testing.T) {
	cases := []struct {
		question string
		want     string
	}{
		{"안녕!", DecisionSimple},
		{"hello", DecisionSimple},
		{"고마워", DecisionSimple},
		{"몇 시야?", DecisionSimple},
		{"Please design a distributed rate limiter for a multi-region API gateway.", DecisionMulti},
		{"이거 왜 안돼?", DecisionMulti},
	}

	for _, c := range cases {
		if got := ruleBasedGate(c.question); got != c.want {
			t.Errorf("ruleBasedGate(%q) = %q, want %q", c.question, got, c.want)
		}
	}
}

func TestGateDecision_LLMGateDisabledUsesRuleBased(t *testing.T) {
	in := PipelineInput{Question: "hi", UseLLMGate: false}
	decision, reason := gateDecision(context.Background(), in, MapRegistry{}, NoopLogger{})

	if decision != DecisionSimple {
		t.Errorf("decision = %q, want SIMPLE", decision)
	}
	if reason != "rule-based gate" {
		t.Errorf("reason = %q, want %q", reason, "rule-based gate")
	}
}

func TestGateDecision_LLMGateOverridesToMulti(t *testing.T) {
	fp := &fakeProvider{text: "MULTI"}
	registry := MapRegistry{ProviderOpenAI: fp}

	in := PipelineInput{
		Question:   "hi",
		UseLLMGate: true,
		GateModel:  "openai:gpt-4o-mini",
		UserAPIKeys: map[string]string{
			ProviderOpenAI: "test-key",
		},
		Execution: DefaultExecutionConfig(),
	}

	decision, reason := gateDecision(context.Background(), in, registry, NoopLogger{})
	if decision != DecisionMulti {
		t.Errorf("decision = %q, want MULTI", decision)
	}
	if reason != "llm gate => MULTI" {
		t.Errorf("reason = %q", reason)
	}
}

func TestGateDecision_MissingKeyKeepsRuleBased(t *testing.T) {
	in := PipelineInput{
		Question:    "hi",
		UseLLMGate:  true,
		GateModel:   "openai:gpt-4o-mini",
		UserAPIKeys: map[string]string{},
		Execution:   DefaultExecutionConfig(),
	}

	decision, reason := gateDecision(context.Background(), in, MapRegistry{}, NoopLogger{})
	if decision != DecisionSimple {
		t.Errorf("decision = %q, want SIMPLE", decision)
	}
	if reason != "rule-based gate" {
		t.Errorf("reason = %q", reason)
	}
}
