// Package settings is the TUI settings screen. It edits the model provider
// and the scan options through driving.SettingsService.
package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/driverfinder/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/driverfinder/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/driverfinder/internal/core/domain"
	"github.com/custodia-labs/driverfinder/internal/core/ports/driving"
)

// Section is the active part of the settings screen.
type Section int

const (
	SectionOverview Section = iota
	SectionLLM
	SectionInterval
	SectionDescriptors
)

// Overview rows, in display order.
const (
	rowProvider = iota
	rowInterval
	rowDescriptors
	rowCount
)

var errNoService = errors.New("settings service not available")

var (
	keyUp     = key.NewBinding(key.WithKeys("up", "k"))
	keyDown   = key.NewBinding(key.WithKeys("down", "j"))
	keyEnter  = key.NewBinding(key.WithKeys("enter"))
	keyBack   = key.NewBinding(key.WithKeys("esc"))
	keySwitch = key.NewBinding(key.WithKeys("tab", "shift+tab"))
)

// View is the settings screen.
type View struct {
	styles  *styles.Styles
	service driving.SettingsService

	settings *domain.AppSettings
	err      error

	section Section
	row     int

	// Provider picker state. editingKey moves input to apiKey.
	provider   int
	editingKey bool
	apiKey     textinput.Model

	// value edits the query interval or the descriptors file.
	value textinput.Model

	width  int
	height int
	ready  bool
}

// NewView creates the settings screen. A nil s uses the default styles.
func NewView(s *styles.Styles, service driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	apiKey := textinput.New()
	apiKey.Placeholder = "API key (optional, asked per scan otherwise)"
	apiKey.EchoMode = textinput.EchoPassword
	apiKey.CharLimit = 256

	value := textinput.New()
	value.CharLimit = 1024

	return &View{
		styles:  s,
		service: service,
		apiKey:  apiKey,
		value:   value,
	}
}

// Init loads the current settings.
func (v *View) Init() tea.Cmd {
	return v.load()
}

func (v *View) load() tea.Cmd {
	service := v.service
	return func() tea.Msg {
		if service == nil {
			return messages.SettingsLoaded{Err: errNoService}
		}
		s, err := service.Get()
		return messages.SettingsLoaded{Settings: s, Err: err}
	}
}

// save runs fn against the service and reports the result as SettingsSaved.
func (v *View) save(fn func(driving.SettingsService) error) tea.Cmd {
	service := v.service
	return func() tea.Msg {
		if service == nil {
			return messages.SettingsSaved{Err: errNoService}
		}
		return messages.SettingsSaved{Err: fn(service)}
	}
}

// Update implements the screen's state machine.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case messages.SettingsLoaded:
		v.err = msg.Err
		if msg.Err == nil {
			v.settings = msg.Settings
		}

	case messages.SettingsSaved:
		v.err = msg.Err
		if msg.Err != nil {
			return v, nil
		}
		v.toOverview()
		return v, v.load()

	case tea.KeyMsg:
		if key.Matches(msg, keyBack) {
			if v.section == SectionOverview {
				return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }
			}
			v.toOverview()
			return v, nil
		}
		switch v.section {
		case SectionOverview:
			return v.updateOverview(msg)
		case SectionLLM:
			return v.updateProvider(msg)
		case SectionInterval, SectionDescriptors:
			return v.updateValue(msg)
		}
	}
	return v, nil
}

func (v *View) updateOverview(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, keyUp):
		v.row = max(v.row-1, 0)
	case key.Matches(msg, keyDown):
		v.row = min(v.row+1, rowCount-1)
	case key.Matches(msg, keyEnter):
		if v.settings == nil {
			return v, nil
		}
		switch v.row {
		case rowProvider:
			v.section = SectionLLM
			v.provider = providerIndex(v.settings.LLM.Provider)
		case rowInterval:
			v.section = SectionInterval
			v.value.Placeholder = "e.g. 500ms or 2s, 0 for none"
			v.value.SetValue(v.settings.Scan.QueryInterval.String())
			return v, v.value.Focus()
		case rowDescriptors:
			v.section = SectionDescriptors
			v.value.Placeholder = "path to a descriptor file, empty for the system inventory"
			v.value.SetValue(v.settings.Scan.DescriptorsFile)
			return v, v.value.Focus()
		}
	}
	return v, nil
}

func (v *View) updateProvider(msg tea.KeyMsg) (*View, tea.Cmd) {
	providers := domain.AllLLMProviders()
	selected := providers[v.provider]

	if v.editingKey {
		switch {
		case key.Matches(msg, keySwitch):
			v.editingKey = false
			v.apiKey.Blur()
			return v, nil
		case key.Matches(msg, keyEnter):
			return v, v.saveProvider(selected, v.apiKey.Value())
		}
		var cmd tea.Cmd
		v.apiKey, cmd = v.apiKey.Update(msg)
		return v, cmd
	}

	switch {
	case key.Matches(msg, keyUp):
		v.provider = max(v.provider-1, 0)
	case key.Matches(msg, keyDown):
		v.provider = min(v.provider+1, len(providers)-1)
	case key.Matches(msg, keySwitch):
		if selected.RequiresAPIKey() {
			v.editingKey = true
			return v, v.apiKey.Focus()
		}
	case key.Matches(msg, keyEnter):
		return v, v.saveProvider(selected, "")
	}
	return v, nil
}

func (v *View) updateValue(msg tea.KeyMsg) (*View, tea.Cmd) {
	if key.Matches(msg, keyEnter) {
		value := strings.TrimSpace(v.value.Value())
		if v.section == SectionInterval {
			return v, v.save(func(s driving.SettingsService) error { return s.SetQueryInterval(value) })
		}
		return v, v.save(func(s driving.SettingsService) error { return s.SetDescriptorsFile(value) })
	}
	var cmd tea.Cmd
	v.value, cmd = v.value.Update(msg)
	return v, cmd
}

// saveProvider stores provider with its default model. Re-selecting the
// current provider without a new key keeps the stored key and model.
func (v *View) saveProvider(provider domain.AIProvider, apiKey string) tea.Cmd {
	model := domain.DefaultLLMModels()[provider]
	if current := v.settings; apiKey == "" && current != nil && current.LLM.Provider == provider {
		apiKey = current.LLM.APIKey
		model = current.LLM.Model
	}
	return v.save(func(s driving.SettingsService) error {
		return s.SetLLMProvider(provider, model, apiKey)
	})
}

func (v *View) toOverview() {
	v.section = SectionOverview
	v.editingKey = false
	v.apiKey.SetValue("")
	v.apiKey.Blur()
	v.value.SetValue("")
	v.value.Blur()
}

func providerIndex(p domain.AIProvider) int {
	for i, candidate := range domain.AllLLMProviders() {
		if candidate == p {
			return i
		}
	}
	return 0
}

// View renders the screen.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n")
	}
	if v.settings == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		return b.String()
	}

	switch v.section {
	case SectionOverview:
		v.renderOverview(&b)
	case SectionLLM:
		v.renderProviders(&b)
	case SectionInterval:
		v.renderValue(&b, "Query interval")
	case SectionDescriptors:
		v.renderValue(&b, "Descriptor file")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render(v.help()))
	return b.String()
}

func (v *View) renderOverview(b *strings.Builder) {
	llm := v.settings.LLM
	scan := v.settings.Scan

	keyNote := v.styles.Muted.Render("[key asked per scan]")
	if llm.APIKey != "" || !llm.Provider.RequiresAPIKey() {
		keyNote = v.styles.Success.Render("[key stored]")
	}
	interval := "none"
	if scan.QueryInterval > 0 {
		interval = scan.QueryInterval.String()
	}
	source := "system inventory"
	if scan.DescriptorsFile != "" {
		source = scan.DescriptorsFile
	}

	rows := [rowCount]string{
		rowProvider:    fmt.Sprintf("LLM Provider: %s (%s)", llm.Provider.Description(), llm.Model),
		rowInterval:    "Query interval: " + interval,
		rowDescriptors: "Devices from: " + source,
	}
	for i, text := range rows {
		if i == v.row {
			b.WriteString("> " + v.styles.Selected.Render(text))
		} else {
			b.WriteString("  " + v.styles.Normal.Render(text))
		}
		if i == rowProvider {
			b.WriteString(" " + keyNote)
		}
		b.WriteString("\n")
	}
}

func (v *View) renderProviders(b *strings.Builder) {
	b.WriteString(v.styles.Subtitle.Render("Select LLM Provider"))
	b.WriteString("\n\n")

	providers := domain.AllLLMProviders()
	models := domain.DefaultLLMModels()
	for i, p := range providers {
		text := p.Description()
		if p == v.settings.LLM.Provider {
			text += " (current)"
		}
		if i == v.provider && !v.editingKey {
			b.WriteString("> " + v.styles.Selected.Render(text))
		} else {
			b.WriteString("  " + v.styles.Normal.Render(text))
		}
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("    Model: " + models[p]))
		b.WriteString("\n")
	}

	if providers[v.provider].RequiresAPIKey() {
		b.WriteString("\n" + v.styles.Normal.Render("API Key:") + "\n")
		b.WriteString(v.apiKey.View())
		b.WriteString("\n")
	}
}

func (v *View) renderValue(b *strings.Builder, label string) {
	b.WriteString(v.styles.Subtitle.Render(label))
	b.WriteString("\n\n")
	b.WriteString(v.styles.InputField.Render(v.value.View()))
	b.WriteString("\n")
}

func (v *View) help() string {
	switch {
	case v.section == SectionOverview:
		return "[j/k] navigate  [enter] change  [esc] back"
	case v.section == SectionLLM && v.editingKey:
		return "[tab] back to list  [enter] save  [esc] cancel"
	case v.section == SectionLLM:
		return "[j/k] navigate  [tab] API key  [enter] select  [esc] cancel"
	default:
		return "[enter] save  [esc] cancel"
	}
}

// SetDimensions records the terminal size.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Reset returns to the overview and clears errors and inputs.
func (v *View) Reset() {
	v.toOverview()
	v.row = 0
	v.err = nil
}

// Section returns the active section.
func (v *View) Section() Section {
	return v.section
}
