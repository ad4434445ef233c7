package orchestrator

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/debait-dev/orchestrator/clarifier"
)

// Run executes one full orchestrator invocation: gate, first-stage
// resolution, fast path or DAG-scheduled stage execution with a budget
// guard, synthesis, quality scoring, and conditional refine.
//
// Run never returns a non-nil error except when ctx is already canceled
// before any work starts; every other failure mode is represented inside
// the returned Result's Final field, matching the source application's
// policy of never raising an exception out of the entrypoint.
func Run(ctx context.Context, in PipelineInput) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	locale := in.Execution.Locale
	if locale == "" {
		locale = "ko"
	}

	logger := in.Logger
	if logger == nil {
		logger = NoopLogger{}
	}

	pricing := in.Pricing
	if pricing == nil {
		pricing = DefaultPricingTable()
	}

	registry := in.Registry
	if registry == nil {
		// No provider wired in; every lookup below reports "not found",
		// which surfaces as a normal missing-API-key configuration error.
		registry = MapRegistry{}
	}

	clarityReport := clarifier.Analyze(in.Question)

	if len(in.Stages) == 0 {
		return Result{Final: msgNoStages(locale)}, nil
	}

	if err := validateStages(in.Stages); err != nil {
		return Result{Final: msgInvalidStages(locale, err.Error())}, nil
	}

	decision, reason := gateDecision(ctx, in, registry, logger)

	firstProviderName, firstModel := splitModel(in.Stages[0].Model)
	firstProvider, hasProvider := registry.Get(firstProviderName)
	firstKey := in.UserAPIKeys[firstProviderName]
	if !hasProvider || firstKey == "" {
		return Result{Final: msgMissingKey(locale, firstProviderName)}, nil
	}

	monitoring := Monitoring{
		DecisionReason: reason,
		StageMetrics:   make(map[string]Runtime),
		Clarity:        &clarityReport,
	}

	// Fast path: SIMPLE decision or a single-stage pipeline skips synth
	// entirely and scores quality directly on the first stage's text.
	if decision == DecisionSimple || len(in.Stages) == 1 {
		first := in.Stages[0]
		result, rt := callWithResilience(ctx, callWithResilienceArgs{
			provider:     firstProvider,
			providerName: firstProviderName,
			apiKey:       firstKey,
			model:        firstModel,
			system:       first.SystemPrompt,
			user:         buildStageUserPrompt(in.Question, in.ThreadSummary, nil),
			maxTokens:    in.Budget.MaxTokensPerStage,
			cfg:          in.Execution,
			logger:       logger,
		})
		if result == nil {
			return Result{Final: msgStageFailed(locale, first.Name, rt.Error)}, nil
		}

		usage := map[string]UsagePayload{first.Name: payload(pricing, *result, rt)}
		monitoring.TotalCostUSD = usage[first.Name].CostUSD
		monitoring.TotalInputTokens = usage[first.Name].InputTokens
		monitoring.TotalOutputTokens = usage[first.Name].OutputTokens
		monitoring.TotalLatencyMS = rt.LatencyMS
		monitoring.StageMetrics[first.Name] = rt

		quality := qualityMatrix(in.Question, result.Text, []StageResult{{Name: first.Name, Text: result.Text}})

		return Result{
			Final:      result.Text,
			Decision:   decision,
			Stages:     []StageResult{{Name: first.Name, Text: result.Text}},
			Usage:      usage,
			Quality:    quality,
			Monitoring: monitoring,
		}, nil
	}

	deps := inferDependencies(in.Stages, in.Execution.EnableDynamicGraph)
	levels := topologyLevels(len(in.Stages), deps)
	monitoring.GraphLevels = levels

	stageResultsByIdx := make(map[int]StageResult, len(in.Stages))
	usage := make(map[string]UsagePayload, len(in.Stages)+2)
	totalCost := 0.0

	for _, level := range levels {
		outcomes := make([]stageOutcome, len(level))
		var wg sync.WaitGroup
		for pos, stageIdx := range level {
			wg.Add(1)
			go func(pos, stageIdx int) {
				defer wg.Done()
				outcomes[pos] = runStage(ctx, in, registry, firstProvider, firstProviderName, firstKey,
					deps, stageResultsByIdx, stageIdx, pricing, logger)
			}(pos, stageIdx)
		}
		wg.Wait()

		for _, o := range outcomes {
			stageResultsByIdx[o.idx] = o.result
			usage[o.result.Name] = o.usage
			monitoring.StageMetrics[o.result.Name] = o.runtime
			monitoring.TotalLatencyMS += o.runtime.LatencyMS
			monitoring.TotalInputTokens += o.usage.InputTokens
			monitoring.TotalOutputTokens += o.usage.OutputTokens
			monitoring.TotalCostUSD = round6(monitoring.TotalCostUSD + o.usage.CostUSD)
			totalCost += o.usage.CostUSD
		}

		if in.Budget.MaxUSD > 0 && totalCost >= in.Budget.MaxUSD {
			monitoring.BudgetGuardTriggered = true
			break
		}
	}

	orderedStageResults := orderedResults(stageResultsByIdx)

	synthProviderName, synthModelID := splitModel(in.SynthModel)
	synthProvider, ok := registry.Get(synthProviderName)
	if !ok {
		synthProvider = firstProvider
		synthProviderName = firstProviderName
	}
	synthKey := in.UserAPIKeys[synthProviderName]
	if synthKey == "" {
		synthKey = firstKey
	}

	synthResult, synthRT := callWithResilience(ctx, callWithResilienceArgs{
		provider:     synthProvider,
		providerName: synthProviderName,
		apiKey:       synthKey,
		model:        synthModelID,
		system:       SynthSystem,
		user:         buildSynthUserPrompt(in.Question, orderedStageResults),
		maxTokens:    in.Budget.SynthMaxTokens,
		cfg:          in.Execution,
		logger:       logger,
	})
	if synthResult == nil {
		return Result{
			Final:      msgSynthFailed(locale, synthRT.Error),
			Stages:     orderedStageResults,
			Usage:      usage,
			Monitoring: monitoring,
		}, nil
	}

	usage[reservedSynthKey] = payload(pricing, *synthResult, synthRT)
	monitoring.StageMetrics[reservedSynthKey] = synthRT
	monitoring.TotalLatencyMS += synthRT.LatencyMS
	monitoring.TotalInputTokens += usage[reservedSynthKey].InputTokens
	monitoring.TotalOutputTokens += usage[reservedSynthKey].OutputTokens
	monitoring.TotalCostUSD = round6(monitoring.TotalCostUSD + usage[reservedSynthKey].CostUSD)

	finalText := synthResult.Text
	quality := qualityMatrix(in.Question, finalText, orderedStageResults)
	refined := false

	if shouldRefine(in.Execution, quality) {
		refineUser := "Question:\n" + in.Question + "\n\n" +
			"Current answer:\n" + finalText + "\n\n" +
			"Quality scores:\n" + qualityDebugString(quality) + "\n\n" +
			"Improve weak dimensions while keeping facts conservative and format clean."

		refinedResult, refinedRT := callWithResilience(ctx, callWithResilienceArgs{
			provider:     synthProvider,
			providerName: synthProviderName,
			apiKey:       synthKey,
			model:        synthModelID,
			system:       QualityRefineSystem,
			user:         refineUser,
			maxTokens:    in.Budget.SynthMaxTokens,
			cfg:          in.Execution,
			logger:       logger,
		})

		if refinedResult != nil && trimmedNonEmpty(refinedResult.Text) {
			candidate := qualityMatrix(in.Question, refinedResult.Text, orderedStageResults)
			if candidate.Overall >= quality.Overall {
				finalText = refinedResult.Text
				quality = candidate
				refined = true

				usage[reservedRefineKey] = payload(pricing, *refinedResult, refinedRT)
				monitoring.StageMetrics[reservedRefineKey] = refinedRT
				monitoring.TotalLatencyMS += refinedRT.LatencyMS
				monitoring.TotalInputTokens += usage[reservedRefineKey].InputTokens
				monitoring.TotalOutputTokens += usage[reservedRefineKey].OutputTokens
				monitoring.TotalCostUSD = round6(monitoring.TotalCostUSD + usage[reservedRefineKey].CostUSD)
			}
		}
	}
	quality.Refined = refined

	return Result{
		Final:      finalText,
		Decision:   decision,
		Stages:     orderedStageResults,
		Usage:      usage,
		Quality:    quality,
		Monitoring: monitoring,
	}, nil
}

type stageOutcome = struct {
	idx     int
	result  StageResult
	usage   UsagePayload
	runtime Runtime
}

// runStage executes one DAG-scheduled stage under the resilience wrapper,
// falling back to a degraded placeholder result if it exhausts retries.
func runStage(
	ctx context.Context,
	in PipelineInput,
	registry Registry,
	firstProvider Provider,
	firstProviderName, firstKey string,
	deps map[int][]int,
	stageResultsByIdx map[int]StageResult,
	stageIdx int,
	pricing PricingTable,
	logger Logger,
) stageOutcome {
	stage := in.Stages[stageIdx]
	providerName, modelID := splitModel(stage.Model)
	provider, ok := registry.Get(providerName)
	if !ok {
		provider = firstProvider
		providerName = firstProviderName
	}
	key := in.UserAPIKeys[providerName]
	if key == "" {
		key = firstKey
	}

	var depResults []StageResult
	for _, d := range deps[stageIdx] {
		if r, ok := stageResultsByIdx[d]; ok {
			depResults = append(depResults, r)
		}
	}

	var promptUser string
	if stageIdx == 0 {
		promptUser = buildStageUserPrompt(in.Question, in.ThreadSummary, nil)
	} else {
		promptUser = buildStageUserPrompt(in.Question, "", depResults)
	}

	result, rt := callWithResilience(ctx, callWithResilienceArgs{
		provider:     provider,
		providerName: providerName,
		apiKey:       key,
		model:        modelID,
		system:       stage.SystemPrompt,
		user:         promptUser,
		maxTokens:    in.Budget.MaxTokensPerStage,
		cfg:          in.Execution,
		logger:       logger,
	})

	if result == nil {
		degraded := LLMResult{
			Text:     "[" + stage.Name + " skipped due to transient failure]\nReason: " + rt.Error,
			Provider: providerName,
			Model:    modelID,
		}
		return stageOutcome{
			idx:     stageIdx,
			result:  StageResult{Name: stage.Name, Text: degraded.Text},
			usage:   payload(pricing, degraded, rt),
			runtime: rt,
		}
	}

	return stageOutcome{
		idx:     stageIdx,
		result:  StageResult{Name: stage.Name, Text: result.Text},
		usage:   payload(pricing, *result, rt),
		runtime: rt,
	}
}

func orderedResults(byIdx map[int]StageResult) []StageResult {
	indices := make([]int, 0, len(byIdx))
	for i := range byIdx {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	out := make([]StageResult, len(indices))
	for i, idx := range indices {
		out[i] = byIdx[idx]
	}
	return out
}

func trimmedNonEmpty(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return true
		}
	}
	return false
}

func qualityDebugString(q QualityReport) string {
	return "{accuracy: " + floatStr(q.Accuracy) + ", completeness: " + floatStr(q.Completeness) +
		", consistency: " + floatStr(q.Consistency) + ", format: " + floatStr(q.Format) +
		", overall: " + floatStr(q.Overall) + "}"
}

func floatStr(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
