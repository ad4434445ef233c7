// Package orchestrator runs a user-configurable, multi-stage pipeline of
// LLM calls that collectively answer a single natural-language question.
//
// Each stage is an independent LLM invocation with its own system prompt,
// model identifier, and provider backend. Stages may read the outputs of
// earlier stages, inferred from a small set of declarative prompt hints.
// After all stages run, a synthesis stage merges their outputs into one
// answer, which is then scored along four quality axes and optionally
// refined once.
package orchestrator

import (
	"time"

	"github.com/debait-dev/orchestrator/clarifier"
)

// StageSpec describes one LLM invocation in the pipeline.
type StageSpec struct {
	// Name is a non-empty display name, used as a key in usage maps and as
	// a role label when persisting messages. Must be unique across the
	// stage list and must not collide with the reserved names "synth" or
	// "quality_refine".
	Name string

	// SystemPrompt is the system prompt sent to the provider for this
	// stage. Its lower-cased text also drives dependency inference (see
	// inferDependencies).
	SystemPrompt string

	// Model is a "<provider>:<model-id>" identifier. A missing colon means
	// the provider defaults to "openai".
	Model string
}

// Budget is immutable per invocation.
type Budget struct {
	// MaxUSD disables the budget guard when 0 or negative.
	MaxUSD float64

	// MaxTokensPerStage caps the max_tokens passed to each non-synth call.
	MaxTokensPerStage int

	// SynthMaxTokens caps the max_tokens passed to synth and refine calls.
	SynthMaxTokens int
}

// ExecutionConfig holds the tunables for one invocation.
type ExecutionConfig struct {
	// RetriesPerStage is >= 0; total attempts = RetriesPerStage+1.
	RetriesPerStage int

	// StageTimeout is the wall-clock cap on one attempt.
	StageTimeout time.Duration

	// EnableDynamicGraph, when false, uses a linear chain where stage i
	// depends only on stage i-1.
	EnableDynamicGraph bool

	// EnableQualityMatrix toggles quality scoring (and therefore refine).
	EnableQualityMatrix bool

	// QualityMinThreshold is compared against min(accuracy, completeness,
	// consistency, format) to decide whether to refine, unless
	// RefineTriggerExpr overrides the comparison.
	QualityMinThreshold float64

	// AutoRefineOnce enables the one-shot conditional refine pass.
	AutoRefineOnce bool

	// RefineTriggerExpr, when non-empty, is a govaluate expression over the
	// variables accuracy, completeness, consistency, format, overall.
	// A truthy result triggers refine in place of the default
	// min(...) < QualityMinThreshold rule. See quality.go.
	RefineTriggerExpr string

	// RateLimits optionally throttles calls to a named provider. Absent
	// entries mean unlimited.
	RateLimits map[string]RateLimiter

	// Locale selects the language of placeholder Result.Final strings
	// returned on configuration or exhaustion failures. Defaults to "ko"
	// to match the source application; "en" is also recognized.
	Locale string
}

// DefaultExecutionConfig mirrors the defaults carried in the Python source
// (app/orchestrator/runner.py's ExecutionConfig dataclass).
func DefaultExecutionConfig() ExecutionConfig {
	return ExecutionConfig{
		RetriesPerStage:     1,
		StageTimeout:        75 * time.Second,
		EnableDynamicGraph:  true,
		EnableQualityMatrix: true,
		QualityMinThreshold: 3.0,
		AutoRefineOnce:      true,
		Locale:              "ko",
	}
}

// LLMResult is returned by a provider call.
type LLMResult struct {
	Text         string
	Provider     string
	Model        string
	InputTokens  int
	OutputTokens int

	// CostUSD may be 0, meaning "unknown, caller must impute" (see
	// imputeCost in pricing.go).
	CostUSD float64
}

// Runtime records the outcome of one resilience-wrapped provider call,
// accumulated across every attempt.
type Runtime struct {
	LatencyMS int64
	Retries   int
	Status    string // "ok" or "failed"
	Error     string
}

// StageResult is the {name, text} pair emitted for one stage.
type StageResult struct {
	Name string
	Text string
}

// UsagePayload is the per-stage usage entry in Result.Usage.
type UsagePayload struct {
	Text         string
	Provider     string
	Model        string
	InputTokens  int
	OutputTokens int
	CostUSD      float64
	LatencyMS    int64
	Retries      int
	Status       string
}

// Monitoring accumulates cross-stage telemetry for one invocation.
type Monitoring struct {
	DecisionReason       string
	GraphLevels          [][]int
	TotalLatencyMS       int64
	TotalCostUSD         float64
	TotalInputTokens     int
	TotalOutputTokens    int
	StageMetrics         map[string]Runtime
	BudgetGuardTriggered bool

	// Clarity is an informational, non-blocking request-clarity report
	// (see the clarifier package); it never alters pipeline execution.
	Clarity *clarifier.Report
}

// QualityReport is the post-hoc four-axis score of the final answer.
type QualityReport struct {
	Accuracy     float64
	Completeness float64
	Consistency  float64
	Format       float64
	Overall      float64
	Refined      bool
}

// PipelineInput bundles every parameter a pipeline run takes.
type PipelineInput struct {
	Question      string
	ThreadSummary string
	UserAPIKeys   map[string]string
	Stages        []StageSpec
	SynthModel    string
	Budget        Budget
	UseLLMGate    bool
	GateModel     string
	Execution     ExecutionConfig

	// Registry resolves provider names to Provider implementations. When
	// nil, Run substitutes an empty registry (every provider lookup then
	// reports "not found", surfacing as a missing-API-key configuration
	// error) rather than auto-wiring providers/DefaultRegistry() — callers
	// must pass a populated Registry to reach any real provider.
	Registry Registry

	// Logger receives structured progress events. NoopLogger is used when
	// nil.
	Logger Logger

	// Pricing overrides the cost-imputation table. DefaultPricingTable()
	// is used when nil.
	Pricing PricingTable
}

// Result is the outcome of one orchestrator invocation.
type Result struct {
	Final      string
	Decision   string // "SIMPLE" or "MULTI"
	Stages     []StageResult
	Usage      map[string]UsagePayload
	Quality    QualityReport
	Monitoring Monitoring
}

// Decision values.
const (
	DecisionSimple = "SIMPLE"
	DecisionMulti  = "MULTI"
)

// Reserved usage-map keys; stage names must not collide with these.
const (
	reservedSynthKey  = "synth"
	reservedRefineKey = "quality_refine"
)
