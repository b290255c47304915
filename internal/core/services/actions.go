package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/driverfinder/internal/core/domain"
	"github.com/custodia-labs/driverfinder/internal/core/ports/driven"
	"github.com/custodia-labs/driverfinder/internal/core/ports/driving"
)

// Ensure LinkActionService implements the interface.
var _ driving.LinkActionService = (*LinkActionService)(nil)

// LinkActionService provides actions on resolved driver links.
type LinkActionService struct {
	clipboard driven.Clipboard
	browser   driven.Browser
}

// NewLinkActionService creates a new link action service.
// Either adapter may be nil, disabling the matching action.
func NewLinkActionService(clipboard driven.Clipboard, browser driven.Browser) *LinkActionService {
	return &LinkActionService{
		clipboard: clipboard,
		browser:   browser,
	}
}

// IsOpenable reports whether url is an http(s) link.
func (s *LinkActionService) IsOpenable(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// OpenLink opens url in the default browser.
func (s *LinkActionService) OpenLink(_ context.Context, url string) error {
	if !s.IsOpenable(url) {
		return fmt.Errorf("%w: not an http(s) link: %q", domain.ErrInvalidInput, url)
	}
	if s.browser == nil {
		return errors.New("browser not available")
	}
	if err := s.browser.Open(url); err != nil {
		return fmt.Errorf("open link: %w", err)
	}
	return nil
}

// CopyLink copies url to the system clipboard.
func (s *LinkActionService) CopyLink(_ context.Context, url string) error {
	if url == "" {
		return fmt.Errorf("%w: empty link", domain.ErrInvalidInput)
	}
	if s.clipboard == nil {
		return errors.New("clipboard not available")
	}
	if err := s.clipboard.WriteAll(url); err != nil {
		return fmt.Errorf("copy link: %w", err)
	}
	return nil
}
