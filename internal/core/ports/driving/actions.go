package driving

import "context"

// LinkActionService acts on resolved driver links.
// Confirmation of an open is the caller's responsibility.
type LinkActionService interface {
	// OpenLink opens an http(s) link in the default browser.
	OpenLink(ctx context.Context, url string) error

	// CopyLink copies a link to the system clipboard.
	CopyLink(ctx context.Context, url string) error

	// IsOpenable reports whether OpenLink would accept url.
	IsOpenable(url string) bool
}
