// Package clarifier scores how ambiguous a natural-language request is,
// independent of the orchestrator pipeline. It is purely informational: its
// output is attached to the monitoring record but never blocks or alters
// pipeline execution.
package clarifier

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Report is the result of analyzing one question for clarity.
type Report struct {
	// Score is in [0, 1]; higher means more ambiguous.
	Score float64

	// Reasons explains which heuristics fired, in the order they were
	// checked, truncated to the first three.
	Reasons []string

	// Questions are up to two ready-to-ask clarifying questions a caller
	// may surface to the user before running the pipeline.
	Questions []string
}

var deicticPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(it|this|that|these|those)\b`),
	regexp.MustCompile(`(이거|그거|저거|이것|그것|저것|요거)`),
}

var goalHints = []string{
	"implement", "fix", "compare", "plan", "design", "debug", "review",
	"구현", "수정", "비교", "계획", "설계", "디버그", "리뷰",
}

var formatHint = regexp.MustCompile(`(?i)\b(json|table|markdown|코드|문서|요약|리스트)\b`)

var questionMarkPattern = regexp.MustCompile(`[?？]`)

var clarifyingQuestions = []string{
	"가장 중요한 목표 1가지를 먼저 알려주세요. (예: 속도 최적화, 정확도, 비용 절감)",
	"제약 조건을 알려주세요. (예: 시간, 예산, 기술 스택, 변경 가능 범위)",
	"원하는 출력 형식을 알려주세요. (예: 체크리스트, 코드 패치, 표, 단계별 가이드)",
}

// Analyze scores how much clarifying context a question is missing.
func Analyze(question string) Report {
	q := strings.TrimSpace(question)
	lower := strings.ToLower(q)

	var reasons []string
	score := 0.0

	if utf8.RuneCountInString(q) < 20 {
		score += 0.35
		reasons = append(reasons, "요청이 짧아 목표/범위 해석 여지가 큽니다.")
	}

	if len(questionMarkPattern.FindAllString(q, -1)) >= 2 {
		score += 0.15
		reasons = append(reasons, "질문이 복수 개라 우선순위가 모호합니다.")
	}

	for _, p := range deicticPatterns {
		if p.MatchString(lower) {
			score += 0.25
			reasons = append(reasons, "지시어(이거/that 등)가 있어 대상이 불명확할 수 있습니다.")
			break
		}
	}

	hasGoalHint := false
	for _, h := range goalHints {
		if strings.Contains(lower, h) {
			hasGoalHint = true
			break
		}
	}
	if !hasGoalHint {
		score += 0.15
		reasons = append(reasons, "원하는 작업 유형(구현/비교/리뷰 등)이 명시되지 않았습니다.")
	}

	if !formatHint.MatchString(lower) {
		score += 0.10
		reasons = append(reasons, "원하는 출력 형식이 명확하지 않습니다.")
	}

	score = math.Min(1.0, math.Round(score*100)/100)

	if len(reasons) > 3 {
		reasons = reasons[:3]
	}

	return Report{
		Score:     score,
		Reasons:   reasons,
		Questions: clarifyingQuestions[:2],
	}
}
