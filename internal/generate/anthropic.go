// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pdiddy/notescript/pkg/types"
)

// defaultAnthropicModel is used when the config names no model.
const defaultAnthropicModel = "claude-sonnet-4-5-20250929"

// anthropicAPIURL is the Anthropic Messages API endpoint. Package-level var
// for test substitution.
var anthropicAPIURL = "https://api.anthropic.com/v1/messages"

// AnthropicBackend submits prompts to the Anthropic Messages API.
type AnthropicBackend struct {
	apiKey    string
	model     string
	maxTokens int
	client    *http.Client
}

// NewAnthropicBackend creates a backend from cfg. The API key is required.
func NewAnthropicBackend(cfg types.AIConfig, client *http.Client) (*AnthropicBackend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: set ANTHROPIC_API_KEY or pass --api-key", ErrAPIKeyNotSet)
	}

	model := cfg.Model
	if model == "" {
		model = defaultAnthropicModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	return &AnthropicBackend{
		apiKey:    cfg.APIKey,
		model:     model,
		maxTokens: maxTokens,
		client:    client,
	}, nil
}

// ModelName returns the model identifier.
func (b *AnthropicBackend) ModelName() string {
	return b.model
}

// anthropicRequest is the request body for the Messages API.
type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

// anthropicMessage is a single message in the conversation.
type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// anthropicResponse is the response body from the Messages API.
type anthropicResponse struct {
	Content []anthropicContent `json:"content"`
}

// anthropicContent is a content block in the response.
type anthropicContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Generate issues one Messages API call and returns the concatenated text
// blocks of the reply.
func (b *AnthropicBackend) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := anthropicRequest{
		Model:     b.model,
		MaxTokens: b.maxTokens,
		Messages: []anthropicMessage{
			{Role: "user", Content: prompt},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicAPIURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", b.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := httpClientOrDefault(b.client).Do(req)
	if err != nil {
		return "", fmt.Errorf("calling Anthropic API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Anthropic API returned %d: %s", resp.StatusCode, string(body))
	}

	var aResp anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&aResp); err != nil {
		return "", fmt.Errorf("decoding Anthropic response: %w", err)
	}

	var sb strings.Builder
	for _, block := range aResp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	if strings.TrimSpace(sb.String()) == "" {
		return "", ErrEmptyReply
	}
	return sb.String(), nil
}
