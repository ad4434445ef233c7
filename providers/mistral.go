package providers

import (
	"context"
	"fmt"

	"github.com/debait-dev/orchestrator"
)

// MistralProvider talks to Mistral's OpenAI-compatible chat completions
// endpoint over raw HTTP. It is wired in alongside the other four vendors
// for the "mistral:" model-string prefix, using the same request/response
// shape as Groq.
type MistralProvider struct {
	baseURL string
}

func NewMistralProvider() *MistralProvider {
	return &MistralProvider{baseURL: "https://api.mistral.ai/v1/chat/completions"}
}

// NewMistralProviderWithBaseURL overrides the endpoint, for tests and
// self-hosted gateways.
func NewMistralProviderWithBaseURL(baseURL string) *MistralProvider {
	return &MistralProvider{baseURL: baseURL}
}

func (p *MistralProvider) Generate(ctx context.Context, apiKey, model, system, user string, maxTokens int) (orchestrator.LLMResult, error) {
	reqBody := openAICompatRequest{
		Model: model,
		Messages: []openAICompatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens: maxTokens,
	}

	headers := map[string]string{"Authorization": "Bearer " + apiKey}

	var resp openAICompatResponse
	if err := postJSON(ctx, p.baseURL, headers, reqBody, &resp); err != nil {
		return orchestrator.LLMResult{}, fmt.Errorf("mistral: %w", err)
	}

	var text string
	if len(resp.Choices) > 0 {
		text = resp.Choices[0].Message.Content
	}

	return orchestrator.LLMResult{
		Text:         text,
		Provider:     orchestrator.ProviderMistral,
		Model:        model,
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
	}, nil
}
