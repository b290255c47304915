package mcp

import (
	"github.com/custodia-labs/driverfinder/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Scanner runs driver link scans.
	Scanner driving.Scanner

	// Settings exposes the current configuration. Optional.
	Settings driving.SettingsService

	// Credential is used when a tool call carries no api_key.
	Credential string
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Scanner == nil {
		return ErrMissingScanner
	}
	return nil
}
