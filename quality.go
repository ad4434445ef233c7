package orchestrator

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/Knetic/govaluate"
	"gonum.org/v1/gonum/stat"
)

func clamp5(v float64) float64 {
	if v < 0 {
		v = 0
	}
	if v > 5 {
		v = 5
	}
	return math.Round(v*10) / 10
}

func wordSet(text string) map[string]struct{} {
	words := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if utf8.RuneCountInString(w) >= 3 {
			set[w] = struct{}{}
		}
	}
	return set
}

func overlapRatio(question, answer string) float64 {
	qWords := wordSet(question)
	aWords := wordSet(answer)
	overlap := 0
	for w := range qWords {
		if _, ok := aWords[w]; ok {
			overlap++
		}
	}
	denom := len(qWords)
	if denom < 1 {
		denom = 1
	}
	return float64(overlap) / float64(denom)
}

var contradictionMarkers = []string{
	"but also not", "yes and no", "모순", "상충", "contradiction", "inconsistent",
}

var checkerTroubleMarkers = []string{"error", "모순", "inconsistent"}

// qualityMatrix scores the final answer along four axes, each clamped to
// [0,5] with one decimal place. Overall is the mean of the four axes,
// computed with gonum/stat.Mean and rounded to two decimals.
func qualityMatrix(question, finalAnswer string, stageResults []StageResult) QualityReport {
	ratio := overlapRatio(question, finalAnswer)
	lowerAnswer := strings.ToLower(finalAnswer)

	accuracy := 2.5 + math.Min(2.0, ratio*2.0)
	if strings.Contains(lowerAnswer, "uncertain") || strings.Contains(lowerAnswer, "불확실") {
		accuracy -= 0.5
	}

	completeness := 2.0
	if utf8.RuneCountInString(finalAnswer) >= 220 {
		completeness += 1.5
	}
	if ratio >= 0.25 {
		completeness += 1.0
	}
	if ratio >= 0.45 {
		completeness += 0.5
	}

	consistency := 4.0
	for _, k := range contradictionMarkers {
		if strings.Contains(lowerAnswer, k) {
			consistency -= 1.5
			break
		}
	}
	var checkerNotes strings.Builder
	for _, s := range stageResults {
		if strings.Contains(strings.ToLower(s.Name), "checker") {
			checkerNotes.WriteString(s.Text)
			checkerNotes.WriteString(" ")
		}
	}
	lowerChecker := strings.ToLower(checkerNotes.String())
	for _, k := range checkerTroubleMarkers {
		if strings.Contains(lowerChecker, k) {
			consistency -= 0.8
			break
		}
	}

	format := 2.5
	if strings.Contains(finalAnswer, "\n- ") || strings.Contains(finalAnswer, "\n1.") {
		format += 1.0
	}
	trimmed := strings.TrimRight(finalAnswer, " \t\r\n")
	if strings.HasSuffix(trimmed, ".") || strings.HasSuffix(trimmed, "!") || strings.HasSuffix(trimmed, "?") ||
		strings.HasSuffix(trimmed, "다") || strings.HasSuffix(trimmed, "요") {
		format += 0.5
	}
	if len(strings.Split(finalAnswer, "\n")) >= 3 {
		format += 0.5
	}

	scores := []float64{clamp5(accuracy), clamp5(completeness), clamp5(consistency), clamp5(format)}
	overall := math.Round(stat.Mean(scores, nil)*100) / 100

	return QualityReport{
		Accuracy:     scores[0],
		Completeness: scores[1],
		Consistency:  scores[2],
		Format:       scores[3],
		Overall:      overall,
	}
}

// shouldRefine decides whether the conditional refine pass should run. When
// cfg.RefineTriggerExpr is non-empty it is compiled and evaluated with
// govaluate over the quality axes; a truthy (or numerically non-zero)
// result triggers refine. Otherwise the default
// min(accuracy,completeness,consistency,format) < QualityMinThreshold rule
// applies.
func shouldRefine(cfg ExecutionConfig, q QualityReport) bool {
	if !cfg.EnableQualityMatrix || !cfg.AutoRefineOnce {
		return false
	}

	if cfg.RefineTriggerExpr != "" {
		expr, err := govaluate.NewEvaluableExpression(cfg.RefineTriggerExpr)
		if err != nil {
			return minAxis(q) < cfg.QualityMinThreshold
		}
		params := map[string]interface{}{
			"accuracy":     q.Accuracy,
			"completeness": q.Completeness,
			"consistency":  q.Consistency,
			"format":       q.Format,
			"overall":      q.Overall,
		}
		result, err := expr.Evaluate(params)
		if err != nil {
			return minAxis(q) < cfg.QualityMinThreshold
		}
		switch v := result.(type) {
		case bool:
			return v
		case float64:
			return v != 0
		default:
			return minAxis(q) < cfg.QualityMinThreshold
		}
	}

	return minAxis(q) < cfg.QualityMinThreshold
}

func minAxis(q QualityReport) float64 {
	m := q.Accuracy
	if q.Completeness < m {
		m = q.Completeness
	}
	if q.Consistency < m {
		m = q.Consistency
	}
	if q.Format < m {
		m = q.Format
	}
	return m
}
