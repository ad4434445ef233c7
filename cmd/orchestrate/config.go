package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/debait-dev/orchestrator"
)

// pipelineFile is the on-disk YAML shape of a pipeline definition, loaded
// independently of orchestrator.PipelineInput so the wire format can evolve
// without touching the library's Go types.
type pipelineFile struct {
	SynthModel string `yaml:"synth_model"`
	Budget     struct {
		MaxUSD            float64 `yaml:"max_usd"`
		MaxTokensPerStage int     `yaml:"max_tokens_per_stage"`
		SynthMaxTokens    int     `yaml:"synth_max_tokens"`
	} `yaml:"budget"`
	UseLLMGate bool   `yaml:"use_llm_gate"`
	GateModel  string `yaml:"gate_model"`
	Execution  struct {
		RetriesPerStage     int     `yaml:"retries_per_stage"`
		StageTimeoutSeconds int     `yaml:"stage_timeout_seconds"`
		EnableDynamicGraph  *bool   `yaml:"enable_dynamic_graph"`
		EnableQualityMatrix *bool   `yaml:"enable_quality_matrix"`
		QualityMinThreshold float64 `yaml:"quality_min_threshold"`
		AutoRefineOnce      *bool   `yaml:"auto_refine_once"`
		RefineTriggerExpr   string  `yaml:"refine_trigger_expr"`
		Locale              string  `yaml:"locale"`
	} `yaml:"execution"`
	Stages []struct {
		Name         string `yaml:"name"`
		SystemPrompt string `yaml:"system_prompt"`
		Model        string `yaml:"model"`
	} `yaml:"stages"`
}

func loadPipelineFile(path string) (pipelineFile, error) {
	var pf pipelineFile
	data, err := os.ReadFile(path)
	if err != nil {
		return pf, fmt.Errorf("read pipeline file: %w", err)
	}
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return pf, fmt.Errorf("parse pipeline YAML: %w", err)
	}
	return pf, nil
}

// toExecutionConfig overlays the YAML values onto orchestrator's defaults,
// so a config that omits a field keeps the library default rather than a
// Go zero value.
func (pf pipelineFile) toExecutionConfig() orchestrator.ExecutionConfig {
	cfg := orchestrator.DefaultExecutionConfig()

	if pf.Execution.RetriesPerStage > 0 {
		cfg.RetriesPerStage = pf.Execution.RetriesPerStage
	}
	if pf.Execution.StageTimeoutSeconds > 0 {
		cfg.StageTimeout = time.Duration(pf.Execution.StageTimeoutSeconds) * time.Second
	}
	if pf.Execution.EnableDynamicGraph != nil {
		cfg.EnableDynamicGraph = *pf.Execution.EnableDynamicGraph
	}
	if pf.Execution.EnableQualityMatrix != nil {
		cfg.EnableQualityMatrix = *pf.Execution.EnableQualityMatrix
	}
	if pf.Execution.QualityMinThreshold > 0 {
		cfg.QualityMinThreshold = pf.Execution.QualityMinThreshold
	}
	if pf.Execution.AutoRefineOnce != nil {
		cfg.AutoRefineOnce = *pf.Execution.AutoRefineOnce
	}
	if pf.Execution.RefineTriggerExpr != "" {
		cfg.RefineTriggerExpr = pf.Execution.RefineTriggerExpr
	}
	if pf.Execution.Locale != "" {
		cfg.Locale = pf.Execution.Locale
	}

	return cfg
}

func (pf pipelineFile) toStages() []orchestrator.StageSpec {
	stages := make([]orchestrator.StageSpec, len(pf.Stages))
	for i, s := range pf.Stages {
		stages[i] = orchestrator.StageSpec{
			Name:         s.Name,
			SystemPrompt: s.SystemPrompt,
			Model:        s.Model,
		}
	}
	return stages
}
