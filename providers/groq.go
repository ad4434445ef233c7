package providers

import (
	"context"
	"fmt"

	"github.com/debait-dev/orchestrator"
)

// GroqProvider talks to Groq's OpenAI-compatible chat completions endpoint
// over raw HTTP, matching the source application's groq_provider.py.
type GroqProvider struct {
	baseURL string
}

func NewGroqProvider() *GroqProvider {
	return &GroqProvider{baseURL: "https://api.groq.com/openai/v1/chat/completions"}
}

// NewGroqProviderWithBaseURL overrides the endpoint, for tests and
// self-hosted gateways.
func NewGroqProviderWithBaseURL(baseURL string) *GroqProvider {
	return &GroqProvider{baseURL: baseURL}
}

type openAICompatRequest struct {
	Model     string                `json:"model"`
	Messages  []openAICompatMessage `json:"messages"`
	MaxTokens int                   `json:"max_tokens,omitempty"`
}

type openAICompatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAICompatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

func (p *GroqProvider) Generate(ctx context.Context, apiKey, model, system, user string, maxTokens int) (orchestrator.LLMResult, error) {
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
		return orchestrator.LLMResult{}, fmt.Errorf("groq: %w", err)
	}

	var text string
	if len(resp.Choices) > 0 {
		text = resp.Choices[0].Message.Content
	}

	return orchestrator.LLMResult{
		Text:         text,
		Provider:     orchestrator.ProviderGroq,
		Model:        model,
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
	}, nil
}
