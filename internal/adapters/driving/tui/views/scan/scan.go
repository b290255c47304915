// Package scan provides the driver scan view for the TUI.
package scan

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/driverfinder/internal/adapters/driving/tui/components/devices"
	"github.com/custodia-labs/driverfinder/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/driverfinder/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/driverfinder/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/driverfinder/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/driverfinder/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/driverfinder/internal/core/domain"
	"github.com/custodia-labs/driverfinder/internal/core/ports/driving"
)

// ErrCredentialRequired is shown when a scan is started without an API key.
var ErrCredentialRequired = errors.New("an API key is required to scan")

// manufacturerWarning is shown before any link is opened.
const manufacturerWarning = "Links are suggested by an AI model and may be wrong.\n" +
	"Only install drivers from the manufacturer's or your computer maker's\n" +
	"official website. Check the address before downloading anything."

// chromeHeight is the number of lines used around the table.
const chromeHeight = 12

// View is the scan view: API key input, device table and status bar.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	scanner driving.Scanner
	actions driving.LinkActionService
	ctx     context.Context

	input  *input.CredentialInput
	table  *devices.Table
	status *status.Bar

	running bool
	// stream is the event channel of the latest scan. Events from older
	// streams are drained but not applied.
	stream <-chan driving.Event
	// confirmURL is the link awaiting confirmation; empty when no dialog is open.
	confirmURL string
	notice     string

	width  int
	height int
}

// NewView creates a new scan view.
func NewView(
	s *styles.Styles,
	scanner driving.Scanner,
	actions driving.LinkActionService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{
		styles:  s,
		keymap:  keymap.DefaultKeyMap(),
		scanner: scanner,
		actions: actions,
		ctx:     context.Background(),
		input:   input.NewCredentialInput(s),
		table:   devices.NewTable(s),
		status:  status.NewBar(s),
		width:   80,
		height:  24,
	}
	v.status.SetBindings(v.keymap.InputHelp())
	return v
}

// SetContext sets the context scans run under.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// SetCredential pre-fills the API key field.
func (v *View) SetCredential(credential string) {
	v.input.SetValue(credential)
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the scan view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ScanEvent:
		if msg.Events == v.stream {
			v.apply(msg.Event)
		}
		return v, messages.WaitForEvent(msg.Events)

	case messages.ScanFinished:
		if msg.Events == v.stream {
			v.stream = nil
			v.running = false
		}
		return v, nil

	case messages.LinkActionDone:
		if msg.Err != nil {
			v.notice = v.styles.Error.Render(fmt.Sprintf("Could not %s link: %v", actionVerb(msg.Action), msg.Err))
		} else {
			v.notice = v.styles.Success.Render(fmt.Sprintf("Link %s.", msg.Action))
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	if v.confirmURL != "" {
		return v.handleDialogKey(key)
	}

	if keymap.Matches(key, v.keymap.Back) {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if keymap.Matches(key, v.keymap.Focus) {
		v.toggleFocus()
		return v, nil
	}

	if v.input.Focused() {
		if keymap.Matches(key, v.keymap.Scan) {
			return v, v.startScan()
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	switch {
	case keymap.Matches(key, v.keymap.Open):
		v.askOpen()
		return v, nil
	case keymap.Matches(key, v.keymap.Copy):
		return v, v.copySelected()
	}

	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

func (v *View) handleDialogKey(key string) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(key, v.keymap.Confirm):
		url := v.confirmURL
		v.confirmURL = ""
		v.status.SetBindings(v.keymap.TableHelp())
		return v, v.openLink(url)
	case keymap.Matches(key, v.keymap.Deny):
		v.confirmURL = ""
		v.status.SetBindings(v.keymap.TableHelp())
	}
	return v, nil
}

// startScan starts a scan unless one is running.
func (v *View) startScan() tea.Cmd {
	if v.running {
		return nil
	}
	credential := v.input.Value()
	if credential == "" {
		v.status.SetState(status.StateError)
		v.status.SetMessage(ErrCredentialRequired.Error())
		return nil
	}

	v.running = true
	v.notice = ""
	v.table.Reset()
	v.status.Clear()
	v.status.SetState(status.StateScanning)

	v.stream = v.scanner.Start(v.ctx, driving.ScanRequest{Credential: credential})
	return messages.WaitForEvent(v.stream)
}

// apply folds one pipeline event into the view.
func (v *View) apply(e driving.Event) {
	switch e.Kind {
	case driving.EventStatus:
		v.status.Report(e.Message)
	case driving.EventDeviceDiscovered:
		v.table.Add(e.Device)
	case driving.EventResolutionUpdated:
		if err := v.table.SetOutcome(e.Index, e.Outcome); err != nil {
			v.status.SetState(status.StateError)
			v.status.SetMessage(err.Error())
		}
	case driving.EventCompleted:
		v.running = false
		v.status.Complete()
	}
}

func (v *View) toggleFocus() {
	if v.input.Focused() {
		v.input.Blur()
		v.table.Focus()
		v.status.SetBindings(v.keymap.TableHelp())
		return
	}
	v.table.Blur()
	v.input.Focus()
	v.status.SetBindings(v.keymap.InputHelp())
}

// askOpen opens the confirmation dialog for the selected link.
func (v *View) askOpen() {
	_, outcome, ok := v.table.Selected()
	if !ok || outcome.State != domain.OutcomeFound {
		return
	}
	if v.actions == nil || !v.actions.IsOpenable(outcome.URL) {
		v.notice = v.styles.Warning.Render("This link cannot be opened in a browser.")
		return
	}
	v.confirmURL = outcome.URL
	v.status.SetBindings(v.keymap.DialogHelp())
}

func (v *View) openLink(url string) tea.Cmd {
	actions, ctx := v.actions, v.ctx
	return func() tea.Msg {
		return messages.LinkActionDone{Action: messages.LinkOpened, URL: url, Err: actions.OpenLink(ctx, url)}
	}
}

func (v *View) copySelected() tea.Cmd {
	_, outcome, ok := v.table.Selected()
	if !ok || outcome.State != domain.OutcomeFound || v.actions == nil {
		return nil
	}
	actions, ctx, url := v.actions, v.ctx, outcome.URL
	return func() tea.Msg {
		return messages.LinkActionDone{Action: messages.LinkCopied, URL: url, Err: actions.CopyLink(ctx, url)}
	}
}

func actionVerb(a messages.LinkAction) string {
	if a == messages.LinkCopied {
		return "copy"
	}
	return "open"
}

// View renders the scan view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Driver scan"))
	b.WriteString("\n\n")
	b.WriteString(v.input.View())
	b.WriteString("\n\n")

	if v.confirmURL != "" {
		b.WriteString(v.renderDialog())
	} else {
		b.WriteString(v.table.View())
		b.WriteString("\n")
		b.WriteString(v.renderSelection())
	}

	if v.notice != "" {
		b.WriteString("\n")
		b.WriteString(v.notice)
	}

	b.WriteString("\n\n")
	b.WriteString(v.status.View())
	return b.String()
}

func (v *View) renderSelection() string {
	d, outcome, ok := v.table.Selected()
	if !ok {
		return v.styles.Muted.Render("No devices yet.")
	}
	line := fmt.Sprintf("%s  %s  ", d.Name, d.HardwareID())
	return v.styles.Normal.Render(line) + v.styles.Outcome(outcome.State).Render(outcome.String())
}

func (v *View) renderDialog() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		v.styles.Subtitle.Render("Open this link in your browser?"),
		"",
		v.styles.Link.Render(v.confirmURL),
		"",
		v.styles.Warning.Render(manufacturerWarning),
		"",
		v.styles.Help.Render("[y] open  [n] cancel"),
	)
	return v.styles.Dialog.Render(body)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width)
	v.table.SetDimensions(width, height-chromeHeight)
	v.status.SetWidth(width)
}

// Running reports whether a scan is in progress.
func (v *View) Running() bool {
	return v.running
}

// ConfirmURL returns the link awaiting confirmation, if any.
func (v *View) ConfirmURL() string {
	return v.confirmURL
}

// Table returns the device table.
func (v *View) Table() *devices.Table {
	return v.table
}

// Status returns the status bar.
func (v *View) Status() *status.Bar {
	return v.status
}
