// Package input provides text input components for the TUI.
package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/driverfinder/internal/adapters/driving/tui/styles"
)

// CredentialInput wraps a bubbles textinput that hides the API key.
type CredentialInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewCredentialInput creates a new credential input component.
func NewCredentialInput(s *styles.Styles) *CredentialInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Enter API key..."
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &CredentialInput{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Init initialises the input.
func (c *CredentialInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (c *CredentialInput) Update(msg tea.Msg) (*CredentialInput, tea.Cmd) {
	var cmd tea.Cmd
	c.textinput, cmd = c.textinput.Update(msg)
	return c, cmd
}

// View renders the input.
func (c *CredentialInput) View() string {
	label := c.styles.Title.Render("API key: ")
	field := c.styles.InputField.Render(c.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the entered credential without surrounding whitespace.
func (c *CredentialInput) Value() string {
	return strings.TrimSpace(c.textinput.Value())
}

// SetValue sets the input value.
func (c *CredentialInput) SetValue(value string) {
	c.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (c *CredentialInput) Focus() tea.Cmd {
	return c.textinput.Focus()
}

// Blur removes focus from the input.
func (c *CredentialInput) Blur() {
	c.textinput.Blur()
}

// Focused returns whether the input is focused.
func (c *CredentialInput) Focused() bool {
	return c.textinput.Focused()
}

// SetWidth sets the width of the input.
func (c *CredentialInput) SetWidth(width int) {
	c.width = width
	// Account for label and padding
	inputWidth := width - 14
	if inputWidth < 20 {
		inputWidth = 20
	}
	c.textinput.Width = inputWidth
}

// Width returns the current width.
func (c *CredentialInput) Width() int {
	return c.width
}
