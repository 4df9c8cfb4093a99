// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/pdiddy/notescript/internal/httputil"
	"github.com/pdiddy/notescript/pkg/types"
)

// defaultMaxTokens caps the model reply when the config does not.
const defaultMaxTokens = 4096

var (
	// ErrAPIKeyNotSet indicates no credential was found for the selected backend.
	ErrAPIKeyNotSet = errors.New("API key not set")

	// ErrEmptyReply indicates the model call succeeded but carried no usable content.
	ErrEmptyReply = errors.New("no response generated from the model")
)

// Backend abstracts the conversational model API so tests can supply a
// deterministic stub. One Generate call issues exactly one remote request;
// there is no retry, caching, or rate limiting. Per Strategy pattern.
type Backend interface {
	// Generate submits the prompt and returns the model's reply text.
	Generate(ctx context.Context, prompt string) (string, error)

	// ModelName returns the model identifier for the provenance header.
	ModelName() string
}

// NewBackend constructs the Backend selected by cfg.Backend.
func NewBackend(cfg types.GenerationConfig) (Backend, error) {
	client := httputil.NewClient(cfg.HTTP)
	switch cfg.Backend {
	case types.BackendAnthropic, "":
		return NewAnthropicBackend(cfg.AIConfig, client)
	case types.BackendOpenAI:
		return NewOpenAIBackend(cfg.AIConfig, client)
	default:
		return nil, fmt.Errorf("unknown backend %q: must be anthropic or openai", cfg.Backend)
	}
}

// ensure both implementations satisfy the interface
var (
	_ Backend = (*AnthropicBackend)(nil)
	_ Backend = (*OpenAIBackend)(nil)
)

// httpClientOrDefault falls back to http.DefaultClient for zero-value backends.
func httpClientOrDefault(c *http.Client) *http.Client {
	if c == nil {
		return http.DefaultClient
	}
	return c
}
