// Package gemini provides an LLM service adapter using the Google Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/generativelanguage/v1beta"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/custodia-labs/driverfinder/internal/core/domain"
	"github.com/custodia-labs/driverfinder/internal/core/ports/driven"
)

// Ensure LLMService implements the interface.
var _ driven.LLMService = (*LLMService)(nil)

// Default configuration values.
const (
	DefaultModel   = "gemini-1.5-flash"
	DefaultTimeout = 120 * time.Second
)

// invalidKeyMessage is the text Google returns with a 400 for a bad API key.
const invalidKeyMessage = "API key not valid"

// Config holds configuration for the Gemini LLM service.
type Config struct {
	// APIKey is the Google AI Studio API key (required).
	APIKey string

	// BaseURL overrides the API endpoint. Empty means the Google default.
	BaseURL string

	// Model is the model to use (default: gemini-1.5-flash).
	Model string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration
}

// LLMService provides LLM operations using the Gemini API.
type LLMService struct {
	svc   *generativelanguage.Service
	model string
}

// NewLLMService creates a new Gemini LLM service.
// No request is made until Ping or Generate is called.
func NewLLMService(ctx context.Context, cfg Config) (*LLMService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	opts := []option.ClientOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(cfg.BaseURL))
	}

	svc, err := generativelanguage.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &LLMService{
		svc:   svc,
		model: cfg.Model,
	}, nil
}

// Generate produces text completion from a prompt.
func (s *LLMService) Generate(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	req := &generativelanguage.GenerateContentRequest{
		Contents: []*generativelanguage.Content{{
			Role:  "user",
			Parts: []*generativelanguage.Part{{Text: prompt}},
		}},
	}
	if opts.MaxTokens > 0 || opts.Temperature > 0 {
		req.GenerationConfig = &generativelanguage.GenerationConfig{
			MaxOutputTokens: int64(opts.MaxTokens),
			Temperature:     opts.Temperature,
		}
	}

	resp, err := s.svc.Models.GenerateContent(modelResource(s.model), req).Context(ctx).Do()
	if err != nil {
		return "", wrapError(err)
	}

	text, err := replyText(resp)
	if err != nil {
		return "", err
	}
	return text, nil
}

// ModelName returns the name of the model being used.
func (s *LLMService) ModelName() string {
	return s.model
}

// Ping fetches the model's metadata. This validates the API key without
// running inference.
func (s *LLMService) Ping(ctx context.Context) error {
	if _, err := s.svc.Models.Get(modelResource(s.model)).Context(ctx).Do(); err != nil {
		return wrapError(err)
	}
	return nil
}

// Close releases resources.
func (s *LLMService) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}

// modelResource returns the API resource name for model.
func modelResource(model string) string {
	if strings.HasPrefix(model, "models/") {
		return model
	}
	return "models/" + model
}

// replyText concatenates the text parts of the first candidate.
func replyText(resp *generativelanguage.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("gemini: prompt blocked: %s", resp.PromptFeedback.BlockReason)
		}
		return "", fmt.Errorf("gemini: no candidates returned")
	}

	content := resp.Candidates[0].Content
	if content == nil {
		return "", nil
	}

	var b strings.Builder
	for _, part := range content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return b.String(), nil
}

// wrapError converts a Google API error, tagging rejected credentials with
// domain.ErrAuthInvalid.
func wrapError(err error) error {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return fmt.Errorf("gemini: %w", err)
	}

	switch {
	case gerr.Code == http.StatusUnauthorized, gerr.Code == http.StatusForbidden:
		return fmt.Errorf("gemini: %w: %s", domain.ErrAuthInvalid, gerr.Message)
	case gerr.Code == http.StatusBadRequest && strings.Contains(gerr.Message, invalidKeyMessage):
		return fmt.Errorf("gemini: %w: %s", domain.ErrAuthInvalid, gerr.Message)
	default:
		return fmt.Errorf("gemini: %w", err)
	}
}
