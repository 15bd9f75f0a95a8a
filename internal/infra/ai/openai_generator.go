// Package ai implements the text-generation domain service against the
// OpenAI chat-completions HTTP API.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"mazao/config"
	"mazao/internal/domain/service"

	"github.com/pkg/errors"
)

const completionsURL = "https://api.openai.com/v1/chat/completions"

type openAIGenerator struct {
	client    *http.Client
	url       string
	model     string
	maxTokens int
}

// NewOpenAIGenerator is the constructor for the chat-completions client.
// The request timeout comes from config so a stalled provider cannot hold a
// handler open indefinitely.
func NewOpenAIGenerator(cfg *config.Config) service.TextGenerator {
	return &openAIGenerator{
		client: &http.Client{
			Timeout: cfg.OpenAI.Timeout,
		},
		url:       completionsURL,
		model:     cfg.OpenAI.Model,
		maxTokens: cfg.OpenAI.MaxTokens,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete sends the prompt and returns the completion text. The API key is
// passed per call because it is resolved at request time from the persisted
// setting or the environment default.
func (g *openAIGenerator) Complete(ctx context.Context, apiKey, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		MaxTokens: g.maxTokens,
	})
	if err != nil {
		return "", errors.Wrap(err, "marshal completion request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "build completion request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "call completion endpoint")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read completion response")
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", errors.Wrapf(err, "decode completion response (status %d)", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", errors.Errorf("completion request failed: %s (%s)", parsed.Error.Message, parsed.Error.Type)
		}

		return "", errors.Errorf("completion request failed with status %d", resp.StatusCode)
	}

	if len(parsed.Choices) == 0 {
		return "", errors.New("completion response contains no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
