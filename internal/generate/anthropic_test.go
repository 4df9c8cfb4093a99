// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/notescript/pkg/types"
)

// withAnthropicServer points the backend at a test server for one test.
func withAnthropicServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	orig := anthropicAPIURL
	anthropicAPIURL = srv.URL
	t.Cleanup(func() { anthropicAPIURL = orig })
}

func testAnthropicBackend(t *testing.T) *AnthropicBackend {
	t.Helper()
	b, err := NewAnthropicBackend(types.AIConfig{APIKey: "sk-ant-test"}, http.DefaultClient)
	require.NoError(t, err)
	return b
}

func TestNewAnthropicBackend(t *testing.T) {
	t.Run("requires an API key", func(t *testing.T) {
		_, err := NewAnthropicBackend(types.AIConfig{}, nil)
		assert.ErrorIs(t, err, ErrAPIKeyNotSet)
	})

	t.Run("defaults model and max tokens", func(t *testing.T) {
		b, err := NewAnthropicBackend(types.AIConfig{APIKey: "k"}, nil)
		require.NoError(t, err)
		assert.Equal(t, defaultAnthropicModel, b.ModelName())
		assert.Equal(t, defaultMaxTokens, b.maxTokens)
	})

	t.Run("honors configured model", func(t *testing.T) {
		b, err := NewAnthropicBackend(types.AIConfig{APIKey: "k", Model: "claude-haiku-4-5"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "claude-haiku-4-5", b.ModelName())
	})
}

func TestAnthropicGenerate(t *testing.T) {
	t.Run("submits prompt and returns reply text", func(t *testing.T) {
		var gotReq anthropicRequest
		withAnthropicServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "sk-ant-test", r.Header.Get("x-api-key"))
			assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

			json.NewEncoder(w).Encode(anthropicResponse{Content: []anthropicContent{
				{Type: "text", Text: "```python\nprint(1)\n```"},
			}})
		})

		reply, err := testAnthropicBackend(t).Generate(context.Background(), "the prompt")
		require.NoError(t, err)

		assert.Equal(t, "```python\nprint(1)\n```", reply)
		require.Len(t, gotReq.Messages, 1)
		assert.Equal(t, "user", gotReq.Messages[0].Role)
		assert.Equal(t, "the prompt", gotReq.Messages[0].Content)
		assert.Equal(t, defaultAnthropicModel, gotReq.Model)
	})

	t.Run("concatenates multiple text blocks", func(t *testing.T) {
		withAnthropicServer(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(anthropicResponse{Content: []anthropicContent{
				{Type: "text", Text: "part one\n"},
				{Type: "thinking", Text: "ignored"},
				{Type: "text", Text: "part two"},
			}})
		})

		reply, err := testAnthropicBackend(t).Generate(context.Background(), "p")
		require.NoError(t, err)
		assert.Equal(t, "part one\npart two", reply)
	})

	t.Run("non-200 status surfaces body", func(t *testing.T) {
		withAnthropicServer(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error": "invalid api key"}`, http.StatusUnauthorized)
		})

		_, err := testAnthropicBackend(t).Generate(context.Background(), "p")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
		assert.Contains(t, err.Error(), "invalid api key")
	})

	t.Run("empty content is ErrEmptyReply", func(t *testing.T) {
		withAnthropicServer(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(anthropicResponse{})
		})

		_, err := testAnthropicBackend(t).Generate(context.Background(), "p")
		assert.ErrorIs(t, err, ErrEmptyReply)
	})
}

func TestNewBackendSelection(t *testing.T) {
	cfgWith := func(kind types.BackendKind) types.GenerationConfig {
		return types.GenerationConfig{AIConfig: types.AIConfig{Backend: kind, APIKey: "k"}}
	}

	b, err := NewBackend(cfgWith(types.BackendAnthropic))
	require.NoError(t, err)
	assert.IsType(t, (*AnthropicBackend)(nil), b)

	b, err = NewBackend(cfgWith(types.BackendOpenAI))
	require.NoError(t, err)
	assert.IsType(t, (*OpenAIBackend)(nil), b)

	b, err = NewBackend(cfgWith(""))
	require.NoError(t, err)
	assert.IsType(t, (*AnthropicBackend)(nil), b)

	_, err = NewBackend(cfgWith("bard"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown backend")
}
