// Package providers implements orchestrator.Provider for each backend the
// pipeline can target: OpenAI, Anthropic, Google, Groq, and Mistral.
package providers

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/debait-dev/orchestrator"
)

// OpenAIProvider wraps the OpenAI Go SDK's chat completions endpoint.
type OpenAIProvider struct {
	baseURL string
}

// NewOpenAIProvider builds an OpenAIProvider. baseURL overrides the default
// OpenAI endpoint, for OpenAI-compatible gateways; pass "" for the default.
func NewOpenAIProvider(baseURL string) *OpenAIProvider {
	return &OpenAIProvider{baseURL: baseURL}
}

func (p *OpenAIProvider) Generate(ctx context.Context, apiKey, model, system, user string, maxTokens int) (orchestrator.LLMResult, error) {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if p.baseURL != "" {
		opts = append(opts, option.WithBaseURL(p.baseURL))
	}
	client := openai.NewClient(opts...)

	messages := []openai.ChatCompletionMessageParamUnion{}
	if system != "" {
		messages = append(messages, openai.SystemMessage(system))
	}
	messages = append(messages, openai.UserMessage(user))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: messages,
	}
	if maxTokens > 0 {
		params.MaxTokens = openai.Int(int64(maxTokens))
	}

	completion, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		return orchestrator.LLMResult{}, fmt.Errorf("openai: %w", err)
	}

	result := orchestrator.LLMResult{
		Provider: orchestrator.ProviderOpenAI,
		Model:    model,
	}
	if len(completion.Choices) > 0 {
		result.Text = completion.Choices[0].Message.Content
	}
	result.InputTokens = int(completion.Usage.PromptTokens)
	result.OutputTokens = int(completion.Usage.CompletionTokens)
	return result, nil
}
