package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mazao/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGenerator(t *testing.T, handler http.HandlerFunc) *openAIGenerator {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.OpenAI.Model = "gpt-4o-mini"
	cfg.OpenAI.MaxTokens = 256
	cfg.OpenAI.Timeout = 5 * time.Second

	gen := NewOpenAIGenerator(cfg).(*openAIGenerator)
	gen.url = server.URL

	return gen
}

func TestOpenAIGenerator_Complete(t *testing.T) {
	gen := testGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		assert.Equal(t, 256, req.MaxTokens)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "# Title\n\nBody text."}},
			},
		})
	})

	text, err := gen.Complete(context.Background(), "sk-test", "Write a blog post")
	require.NoError(t, err)
	assert.Equal(t, "# Title\n\nBody text.", text)
}

func TestOpenAIGenerator_ProviderError(t *testing.T) {
	gen := testGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "Incorrect API key provided", "type": "invalid_request_error"},
		})
	})

	text, err := gen.Complete(context.Background(), "sk-bad", "prompt")
	assert.Error(t, err)
	assert.Empty(t, text)
	assert.Contains(t, err.Error(), "Incorrect API key provided")
}

func TestOpenAIGenerator_NoChoices(t *testing.T) {
	gen := testGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	text, err := gen.Complete(context.Background(), "sk-test", "prompt")
	assert.Error(t, err)
	assert.Empty(t, text)
}
