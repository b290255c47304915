package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/driverfinder/internal/core/domain"
	"github.com/custodia-labs/driverfinder/internal/core/ports/driven"
	"github.com/custodia-labs/driverfinder/internal/logger"
)

// invalidCredentialIndicator is the substring providers put in errors for a
// rejected API key.
const invalidCredentialIndicator = "API key not valid"

// linkReplyTokens caps a reply; the answer is one URL or the marker.
const linkReplyTokens = 256

// promptPlaceholders is the number of %s verbs in the driver-link template.
const promptPlaceholders = 4

// LinkResolver asks the knowledge service for one device's driver link and
// classifies the reply. It performs exactly one call per Resolve.
type LinkResolver struct {
	llm     driven.LLMService
	prompts driven.PromptStore
}

// NewLinkResolver creates a resolver over an LLM service.
// prompts may be nil, in which case the built-in prompt is used.
func NewLinkResolver(llm driven.LLMService, prompts driven.PromptStore) *LinkResolver {
	return &LinkResolver{
		llm:     llm,
		prompts: prompts,
	}
}

// Verify performs the lightweight credential check that must succeed before
// any device is queried.
func (r *LinkResolver) Verify(ctx context.Context) error {
	if r.llm == nil {
		return fmt.Errorf("%w: %w", domain.ErrAuthentication, domain.ErrLLMUnavailable)
	}
	if err := r.llm.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrAuthentication, err)
	}
	return nil
}

// Resolve queries the knowledge service for device and classifies the reply.
func (r *LinkResolver) Resolve(ctx context.Context, device domain.HardwareDevice, platformLabel string) domain.Outcome {
	if r.llm == nil {
		return domain.Failed(fmt.Errorf("%w: %w", domain.ErrQuery, domain.ErrLLMUnavailable))
	}

	prompt := r.BuildPrompt(device, platformLabel)
	logger.Debug("prompt for %s:\n%s", device.HardwareID(), prompt)

	reply, err := r.llm.Generate(ctx, prompt, driven.GenerateOptions{MaxTokens: linkReplyTokens})
	if err != nil {
		logger.Warn("query for %s failed: %v", device.HardwareID(), err)
	} else {
		logger.Debug("reply for %s: %q", device.HardwareID(), reply)
	}

	return ClassifyReply(reply, err)
}

// BuildPrompt renders the driver-link prompt for device.
// A stored template without exactly four %s placeholders is ignored.
func (r *LinkResolver) BuildPrompt(device domain.HardwareDevice, platformLabel string) string {
	template := r.loadPrompt(driven.PromptDriverLink, driven.DefaultDriverLinkPrompt)
	if strings.Count(template, "%s") != promptPlaceholders || strings.Count(template, "%") != promptPlaceholders {
		logger.Warn("prompt %q has the wrong placeholders, using built-in prompt", driven.PromptDriverLink)
		template = driven.DefaultDriverLinkPrompt
	}
	return fmt.Sprintf(template, device.Name, device.VendorID, device.DeviceID, platformLabel)
}

// loadPrompt loads a prompt from the store, falling back to the default if unavailable.
func (r *LinkResolver) loadPrompt(name, fallback string) string {
	if r.prompts == nil {
		return fallback
	}
	prompt, err := r.prompts.Load(name)
	if err != nil {
		return fallback
	}
	return prompt
}

// ClassifyReply turns a raw service reply (or error) into an Outcome.
// No URL validation is applied to a non-empty reply: the service's answer is
// trusted as-is.
func ClassifyReply(reply string, err error) domain.Outcome {
	if err != nil {
		if isInvalidCredential(err) {
			return domain.Failed(fmt.Errorf("%w: %w", domain.ErrAuthentication, err))
		}
		return domain.Failed(fmt.Errorf("%w: %w", domain.ErrQuery, err))
	}

	link := CleanReply(reply)
	switch link {
	case driven.NotFoundMarker:
		return domain.NotFound()
	case "":
		return domain.Failed(fmt.Errorf("%w: empty reply", domain.ErrQuery))
	default:
		return domain.Found(link)
	}
}

// CleanReply trims whitespace and strips backtick/code-fence characters.
func CleanReply(reply string) string {
	return strings.TrimSpace(strings.ReplaceAll(strings.TrimSpace(reply), "`", ""))
}

// FailureReason returns the operator-facing reason for a failed outcome.
func FailureReason(err error) string {
	if errors.Is(err, domain.ErrAuthentication) {
		return "API key is invalid."
	}
	return "API query failed."
}

func isInvalidCredential(err error) bool {
	return errors.Is(err, domain.ErrAuthInvalid) ||
		errors.Is(err, domain.ErrAuthentication) ||
		strings.Contains(err.Error(), invalidCredentialIndicator)
}
