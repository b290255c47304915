// Package styles holds the TUI palette and lipgloss styles.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/driverfinder/internal/core/domain"
)

// Theme is the TUI palette. Every colour adapts to light and dark terminals.
type Theme struct {
	Accent  lipgloss.AdaptiveColor
	Header  lipgloss.AdaptiveColor
	Text    lipgloss.AdaptiveColor
	Muted   lipgloss.AdaptiveColor
	Border  lipgloss.AdaptiveColor
	Bar     lipgloss.AdaptiveColor
	Success lipgloss.AdaptiveColor

	// Outcome colours. Found links are blue, missing links yellow and
	// failures red, matching the plain terminal report.
	Found    lipgloss.AdaptiveColor
	NotFound lipgloss.AdaptiveColor
	Failed   lipgloss.AdaptiveColor
}

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// DefaultTheme returns the default palette.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:   adaptive("#6D28D9", "#7C3AED"),
		Header:   adaptive("#0E7490", "#06B6D4"),
		Text:     adaptive("#1F2937", "#CDD6F4"),
		Muted:    adaptive("#6B7280", "#6C7086"),
		Border:   adaptive("#D1D5DB", "#45475A"),
		Bar:      adaptive("#E5E7EB", "#181825"),
		Success:  adaptive("#15803D", "#A6E3A1"),
		Found:    adaptive("#1D4ED8", "#89B4FA"),
		NotFound: adaptive("#B45309", "#F9E2AF"),
		Failed:   adaptive("#B91C1C", "#F38BA8"),
	}
}

// Styles are the lipgloss styles built from a Theme.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Help     lipgloss.Style

	// Selected highlights the focused menu entry or table row.
	Selected lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	// Link renders a found driver URL.
	Link lipgloss.Style

	InputField lipgloss.Style
	StatusBar  lipgloss.Style

	// Dialog frames the open-link confirmation.
	Dialog lipgloss.Style
}

// NewStyles builds styles from theme. A nil theme means DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	fg := func(c lipgloss.TerminalColor) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}
	framed := func(c lipgloss.TerminalColor) lipgloss.Style {
		return lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(c)
	}

	return &Styles{
		theme: theme,

		Title:    fg(theme.Accent).Bold(true),
		Subtitle: fg(theme.Header).Bold(true),
		Normal:   fg(theme.Text),
		Muted:    fg(theme.Muted),
		Help:     fg(theme.Muted),
		Selected: fg(theme.Text).Background(theme.Accent).Bold(true),

		Success: fg(theme.Success),
		Warning: fg(theme.NotFound),
		Error:   fg(theme.Failed),
		Link:    fg(theme.Found).Underline(true),

		InputField: framed(theme.Border).Padding(0, 1),
		StatusBar:  fg(theme.Muted).Background(theme.Bar).Padding(0, 1),
		Dialog:     framed(theme.NotFound).Padding(1, 2),
	}
}

// DefaultStyles returns styles for the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the palette the styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Outcome returns the style for a resolution state.
func (s *Styles) Outcome(state domain.OutcomeState) lipgloss.Style {
	switch state {
	case domain.OutcomeFound:
		return s.Link
	case domain.OutcomeNotFound:
		return s.Warning
	case domain.OutcomeFailed:
		return s.Error
	default:
		return s.Muted
	}
}
