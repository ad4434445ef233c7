package orchestrator

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"
)

// simplePatterns are the greeting/small-talk regexes that qualify a short
// question for the SIMPLE fast path. Case-insensitive, anchored.
var simplePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(안녕|hi|hello|hey|ㅎㅇ|하이)[!?.\s]*$`),
	regexp.MustCompile(`(?i)^(고마워|감사|thank)[!?.\s]*$`),
	regexp.MustCompile(`(?i)^(몇\s*시|what\s*time|오늘\s*날씨)[^a-z]*$`),
}

// ruleBasedGate classifies a question as SIMPLE or MULTI using only the
// question text: SIMPLE iff trimmed length is under 20 characters and the
// text matches one of simplePatterns.
func ruleBasedGate(question string) string {
	q := strings.TrimSpace(question)
	if utf8.RuneCountInString(q) < 20 {
		for _, p := range simplePatterns {
			if p.MatchString(q) {
				return DecisionSimple
			}
		}
	}
	return DecisionMulti
}

// gateDecision runs the rule-based gate and, when enabled and a key is
// available for the gate provider, allows a short LLM call to override it.
// An LLM-gate failure silently keeps the rule-based decision.
func gateDecision(ctx context.Context, in PipelineInput, registry Registry, logger Logger) (decision, reason string) {
	decision = ruleBasedGate(in.Question)
	reason = "rule-based gate"

	if !in.UseLLMGate {
		return decision, reason
	}

	gateProviderName, gateModel := splitModel(in.GateModel)
	gateKey := in.UserAPIKeys[gateProviderName]
	gateProvider, ok := registry.Get(gateProviderName)
	if gateKey == "" || !ok {
		return decision, reason
	}

	result, _ := callWithResilience(ctx, callWithResilienceArgs{
		provider:  gateProvider,
		apiKey:    gateKey,
		model:     gateModel,
		system:    GateSystem,
		user:      gateUserPrompt(in.ThreadSummary, in.Question),
		maxTokens: 5,
		cfg:       in.Execution,
		providerName: gateProviderName,
		logger:    logger,
	})
	if result == nil {
		return decision, reason
	}

	upper := strings.ToUpper(result.Text)
	switch {
	case strings.Contains(upper, "MULTI"):
		return DecisionMulti, "llm gate => MULTI"
	case strings.Contains(upper, "SIMPLE"):
		return DecisionSimple, "llm gate => SIMPLE"
	default:
		return decision, reason
	}
}
