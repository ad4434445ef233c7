package clarifier

import "testing"

func TestAnalyze_ShortVagueQuestionScoresHigh(t *testing.T) {
	r := Analyze("fix this?")
	if r.Score < 0.5 {
		t.Errorf("score = %v, want a high ambiguity score for a short deictic question", r.Score)
	}
	if len(r.Questions) != 2 {
		t.Errorf("expected 2 clarifying questions, got %d", len(r.Questions))
	}
}

func TestAnalyze_DetailedRequestScoresLow(t *testing.T) {
	r := Analyze("Please implement a token bucket rate limiter in Go and return the result as a markdown table comparing throughput under three configurations.")
	if r.Score > 0.3 {
		t.Errorf("score = %v, want a low ambiguity score for a detailed, goal- and format-bearing request", r.Score)
	}
}

func TestAnalyze_ScoreNeverExceedsOne(t *testing.T) {
	r := Analyze("this? that? it??")
	if r.Score > 1.0 {
		t.Errorf("score = %v, must never exceed 1.0", r.Score)
	}
}

func TestAnalyze_ReasonsTruncatedToThree(t *testing.T) {
	r := Analyze("이거 그거?")
	if len(r.Reasons) > 3 {
		t.Errorf("expected at most 3 reasons, got %d", len(r.Reasons))
	}
}
