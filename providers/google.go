package providers

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/debait-dev/orchestrator"
)

// GoogleProvider wraps the Gemini Go SDK's GenerativeModel.
type GoogleProvider struct{}

func NewGoogleProvider() *GoogleProvider { return &GoogleProvider{} }

func (p *GoogleProvider) Generate(ctx context.Context, apiKey, model, system, user string, maxTokens int) (orchestrator.LLMResult, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return orchestrator.LLMResult{}, fmt.Errorf("google: client: %w", err)
	}
	defer client.Close()

	gm := client.GenerativeModel(model)
	if system != "" {
		gm.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(system)},
		}
	}
	if maxTokens > 0 {
		gm.SetMaxOutputTokens(int32(maxTokens))
	}

	resp, err := gm.GenerateContent(ctx, genai.Text(user))
	if err != nil {
		return orchestrator.LLMResult{}, fmt.Errorf("google: %w", err)
	}

	var text string
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text += string(t)
			}
		}
	}

	result := orchestrator.LLMResult{
		Text:     text,
		Provider: orchestrator.ProviderGoogle,
		Model:    model,
	}
	if resp.UsageMetadata != nil {
		result.InputTokens = int(resp.UsageMetadata.PromptTokenCount)
		result.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
	}
	return result, nil
}
