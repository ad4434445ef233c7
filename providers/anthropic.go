package providers

import (
	"context"
	"fmt"

	"github.com/debait-dev/orchestrator"
)

// AnthropicProvider calls the Messages API directly over HTTP; no Anthropic
// Go SDK is part of the dependency set, so this mirrors the source
// application's own raw httpx usage for this vendor.
type AnthropicProvider struct {
	baseURL string
}

// NewAnthropicProvider builds an AnthropicProvider against the public API.
func NewAnthropicProvider() *AnthropicProvider {
	return &AnthropicProvider{baseURL: "https://api.anthropic.com/v1/messages"}
}

// NewAnthropicProviderWithBaseURL overrides the endpoint, for tests and
// self-hosted gateways.
func NewAnthropicProviderWithBaseURL(baseURL string) *AnthropicProvider {
	return &AnthropicProvider{baseURL: baseURL}
}

type anthropicContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type anthropicRequest struct {
	Model     string `json:"model"`
	MaxTokens int    `json:"max_tokens"`
	System    string `json:"system"`
	Messages  []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

type anthropicResponse struct {
	Content []anthropicContentBlock `json:"content"`
	Usage   struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

func (p *AnthropicProvider) Generate(ctx context.Context, apiKey, model, system, user string, maxTokens int) (orchestrator.LLMResult, error) {
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	reqBody := anthropicRequest{
		Model:     model,
		MaxTokens: maxTokens,
		System:    system,
	}
	reqBody.Messages = append(reqBody.Messages, struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}{Role: "user", Content: user})

	headers := map[string]string{
		"x-api-key":         apiKey,
		"anthropic-version": "2023-06-01",
	}

	var resp anthropicResponse
	if err := postJSON(ctx, p.baseURL, headers, reqBody, &resp); err != nil {
		return orchestrator.LLMResult{}, fmt.Errorf("anthropic: %w", err)
	}

	var text string
	for _, c := range resp.Content {
		if c.Type == "text" {
			text += c.Text
		}
	}

	return orchestrator.LLMResult{
		Text:         text,
		Provider:     orchestrator.ProviderAnthropic,
		Model:        model,
		InputTokens:  resp.Usage.InputTokens,
		OutputTokens: resp.Usage.OutputTokens,
	}, nil
}
