package service

import "context"

// TextGenerator defines the interface to the external text-generation
// provider. The API key is passed per call because it is resolved at request
// time: a persisted setting takes precedence over the environment default.
type TextGenerator interface {
	// Complete sends the prompt and returns the completion text. The call is
	// bounded by the provider client's configured timeout.
	Complete(ctx context.Context, apiKey, prompt string) (string, error)
}
