// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"

	"github.com/pdiddy/notescript/pkg/types"
)

// defaultOpenAIModel is used when the config names no model.
const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIBackend submits prompts to the OpenAI chat completions API.
type OpenAIBackend struct {
	client    openai.Client
	model     string
	maxTokens int
}

// NewOpenAIBackend creates a backend from cfg. The API key is required.
func NewOpenAIBackend(cfg types.AIConfig, httpClient *http.Client) (*OpenAIBackend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: set OPENAI_API_KEY or pass --api-key", ErrAPIKeyNotSet)
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	return &OpenAIBackend{
		client:    openai.NewClient(opts...),
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

// ModelName returns the model identifier.
func (b *OpenAIBackend) ModelName() string {
	return b.model
}

// Generate issues one chat-completions call and returns the reply text.
func (b *OpenAIBackend) Generate(ctx context.Context, prompt string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(b.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		MaxTokens: openai.Int(int64(b.maxTokens)),
	}

	completion, err := b.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("calling OpenAI API: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", ErrEmptyReply
	}

	content := completion.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyReply
	}
	return content, nil
}
