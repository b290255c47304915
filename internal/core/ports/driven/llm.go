// Package driven provides interfaces for infrastructure adapters (secondary/outbound ports).
package driven

import (
	"context"

	"github.com/custodia-labs/driverfinder/internal/core/domain"
)

// LLMService is the remote knowledge service asked for driver links.
//
// Implementations may include:
//   - Gemini (default)
//   - OpenAI
//   - Anthropic
//   - Ollama (local models)
type LLMService interface {
	// Generate produces text completion from a prompt.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the LLM model being used.
	ModelName() string

	// Ping validates the credential and connectivity with a lightweight request.
	// Adapters wrap domain.ErrAuthInvalid when the provider rejects the key.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// LLMFactory creates LLM services from settings.
type LLMFactory interface {
	// Create returns a service for the given settings.
	Create(settings domain.LLMSettings) (LLMService, error)
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64
}
