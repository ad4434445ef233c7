// Command orchestrate runs a YAML-configured pipeline against a single
// question from the command line.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/debait-dev/orchestrator"
	"github.com/debait-dev/orchestrator/providers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: no .env file loaded: %v", err)
	}

	pipelinePath := flag.String("pipeline", "pipeline.yaml", "path to the pipeline YAML config")
	question := flag.String("question", "", "the question to run through the pipeline")
	threadSummary := flag.String("thread-summary", "", "optional prior-conversation summary")
	flag.Parse()

	if *question == "" {
		log.Fatal("-question is required")
	}

	pf, err := loadPipelineFile(*pipelinePath)
	if err != nil {
		log.Fatalf("loading pipeline config: %v", err)
	}

	in := orchestrator.PipelineInput{
		Question:      *question,
		ThreadSummary: *threadSummary,
		UserAPIKeys: map[string]string{
			orchestrator.ProviderOpenAI:    os.Getenv("OPENAI_API_KEY"),
			orchestrator.ProviderAnthropic: os.Getenv("ANTHROPIC_API_KEY"),
			orchestrator.ProviderGoogle:    os.Getenv("GOOGLE_API_KEY"),
			orchestrator.ProviderGroq:      os.Getenv("GROQ_API_KEY"),
			orchestrator.ProviderMistral:   os.Getenv("MISTRAL_API_KEY"),
		},
		Stages:     pf.toStages(),
		SynthModel: pf.SynthModel,
		Budget: orchestrator.Budget{
			MaxUSD:            pf.Budget.MaxUSD,
			MaxTokensPerStage: pf.Budget.MaxTokensPerStage,
			SynthMaxTokens:    pf.Budget.SynthMaxTokens,
		},
		UseLLMGate: pf.UseLLMGate,
		GateModel:  pf.GateModel,
		Execution:  pf.toExecutionConfig(),
		Registry:   providers.DefaultRegistry(),
		Logger:     orchestrator.NewStdLogger(orchestrator.LogLevelInfo),
	}

	result, err := orchestrator.Run(context.Background(), in)
	if err != nil {
		log.Fatalf("orchestrator run aborted: %v", err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("encoding result: %v", err)
	}
	os.Stdout.Write(out)
	os.Stdout.WriteString("\n")
}
