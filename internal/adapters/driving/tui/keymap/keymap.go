// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// Scan starts a scan from the API key field.
	Scan key.Binding

	// Focus moves focus between the API key field and the device table.
	Focus key.Binding

	// Up navigates up in the device table.
	Up key.Binding

	// Down navigates down in the device table.
	Down key.Binding

	// Open asks to open the selected device's link.
	Open key.Binding

	// Copy copies the selected device's link.
	Copy key.Binding

	// Confirm accepts the open-link dialog.
	Confirm key.Binding

	// Deny dismisses the open-link dialog.
	Deny key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Scan: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "scan"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch focus"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("enter/o", "open link"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy link"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "open"),
		),
		Deny: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n/esc", "cancel"),
		),
	}
}

// InputHelp returns keybindings shown while the API key field has focus.
func (k *KeyMap) InputHelp() []key.Binding {
	return []key.Binding{k.Scan, k.Focus, k.Back}
}

// TableHelp returns keybindings shown while the device table has focus.
func (k *KeyMap) TableHelp() []key.Binding {
	return []key.Binding{k.Up, k.Open, k.Copy, k.Focus, k.Back}
}

// DialogHelp returns keybindings shown in the open-link dialog.
func (k *KeyMap) DialogHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Deny}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
