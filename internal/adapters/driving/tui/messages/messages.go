// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/driverfinder/internal/core/domain"
	"github.com/custodia-labs/driverfinder/internal/core/ports/driving"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewScan is the credential input and device table view.
	ViewScan
	// ViewSettings is the settings configuration view.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewScan:
		return "scan"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ScanEvent carries one pipeline event and the stream it came from,
// so the receiver can wait for the next one.
type ScanEvent struct {
	Event  driving.Event
	Events <-chan driving.Event
}

// ScanFinished is sent when the event stream Events has been closed.
type ScanFinished struct {
	Events <-chan driving.Event
}

// WaitForEvent returns a command reading the next event from events.
func WaitForEvent(events <-chan driving.Event) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-events
		if !ok {
			return ScanFinished{Events: events}
		}
		return ScanEvent{Event: e, Events: events}
	}
}

// LinkAction identifies an action on a resolved link.
type LinkAction int

const (
	// LinkOpened means the link was handed to the browser.
	LinkOpened LinkAction = iota
	// LinkCopied means the link was copied to the clipboard.
	LinkCopied
)

// String returns the string representation of the action.
func (a LinkAction) String() string {
	switch a {
	case LinkOpened:
		return "opened"
	case LinkCopied:
		return "copied"
	default:
		return "unknown"
	}
}

// LinkActionDone reports the result of an open or copy.
type LinkActionDone struct {
	Action LinkAction
	URL    string
	Err    error
}

// SettingsLoaded carries loaded settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved indicates settings were saved.
type SettingsSaved struct {
	Err error
}

// ErrorOccurred is sent when an error needs to be displayed.
type ErrorOccurred struct {
	Err error
}

// Quit is sent to exit the application.
type Quit struct{}
