package orchestrator

import (
	"strings"
	"testing"
)

func containsAll(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

func TestBuildStageUserPrompt_FirstStageIncludesThreadSummary(t *testing.T) {
	got := buildStageUserPrompt("what is a CDN?", "earlier we discussed caching", nil)
	if !containsAll(got, "earlier we discussed caching", "what is a CDN?") {
		t.Errorf("prompt missing expected content: %q", got)
	}
}

func TestBuildStageUserPrompt_DependentStageIncludesPriorResults(t *testing.T) {
	prev := []StageResult{{Name: "researcher", Text: "a CDN caches content near users"}}
	got := buildStageUserPrompt("summarize", "", prev)
	if !containsAll(got, "researcher", "a CDN caches content near users") {
		t.Errorf("prompt missing dependency output: %q", got)
	}
}

func TestBuildSynthUserPrompt_IncludesEveryStage(t *testing.T) {
	stages := []StageResult{
		{Name: "researcher", Text: "fact one"},
		{Name: "critic", Text: "concern one"},
	}
	got := buildSynthUserPrompt("question text", stages)
	if !containsAll(got, "fact one", "concern one", "question text") {
		t.Errorf("synth prompt missing expected content: %q", got)
	}
}
