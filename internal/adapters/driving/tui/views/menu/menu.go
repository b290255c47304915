// Package menu is the TUI start screen.
package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/driverfinder/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/driverfinder/internal/adapters/driving/tui/styles"
)

// Item is one menu entry. Entries with Quit set exit the program.
type Item struct {
	Label       string
	Description string
	View        messages.ViewType
	Quit        bool
}

var defaultItems = []Item{
	{Label: "Scan drivers", Description: "Find official driver links for this machine", View: messages.ViewScan},
	{Label: "Settings", Description: "Choose the model provider and scan options", View: messages.ViewSettings},
	{Label: "Help", Description: "Keys and how links are found", View: messages.ViewHelp},
	{Label: "Quit", Quit: true},
}

var (
	keyUp     = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up"))
	keyDown   = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down"))
	keySelect = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select"))
	keyQuit   = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
)

// View is the start menu.
type View struct {
	styles   *styles.Styles
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates the menu. A nil s uses the default styles.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		items:  defaultItems,
		width:  80,
		height: 24,
	}
}

// Init implements tea.Model.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and activates entries. Digits 1-9 activate the
// matching entry directly.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keyUp):
			v.selected = max(v.selected-1, 0)
		case key.Matches(msg, keyDown):
			v.selected = min(v.selected+1, len(v.items)-1)
		case key.Matches(msg, keySelect):
			return v, v.activate(v.selected)
		case key.Matches(msg, keyQuit):
			return v, tea.Quit
		default:
			if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
				if i := int(s[0] - '1'); i < len(v.items) {
					v.selected = i
					return v, v.activate(i)
				}
			}
		}
	}
	return v, nil
}

func (v *View) activate(i int) tea.Cmd {
	item := v.items[i]
	if item.Quit {
		return tea.Quit
	}
	return func() tea.Msg {
		return messages.ViewChanged{View: item.View}
	}
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("driverfinder"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Official driver links for your hardware"))
	b.WriteString("\n\n")

	for i, item := range v.items {
		label := fmt.Sprintf("%d. %s", i+1, item.Label)
		if i == v.selected {
			b.WriteString("> " + v.styles.Selected.Render(label))
		} else {
			b.WriteString("  " + v.styles.Normal.Render(label))
		}
		if item.Description != "" && v.width >= 60 {
			b.WriteString("  " + v.styles.Muted.Render(item.Description))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := make([]string, 0, 4)
	for _, k := range []key.Binding{keyUp, keyDown, keySelect, keyQuit} {
		h := k.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString(v.styles.Help.Render(strings.Join(help, "  ")))

	return b.String()
}

// SetDimensions records the terminal size and marks the view ready.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the cursor index.
func (v *View) Selected() int {
	return v.selected
}
