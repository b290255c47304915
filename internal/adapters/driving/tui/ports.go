// Package tui provides an interactive terminal user interface for driverfinder.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/driverfinder/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Scanner runs driver link scans.
	Scanner driving.Scanner

	// Actions opens and copies resolved links.
	Actions driving.LinkActionService

	// Settings manages application settings.
	Settings driving.SettingsService

	// Credential pre-fills the API key field.
	Credential string
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	scanner driving.Scanner,
	actions driving.LinkActionService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Scanner:  scanner,
		Actions:  actions,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
// Actions and Settings are optional.
func (p *Ports) Validate() error {
	if p.Scanner == nil {
		return ErrMissingScanner
	}
	return nil
}
