// Package devices provides the device table component for the TUI.
package devices

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/driverfinder/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/driverfinder/internal/core/domain"
)

// Column widths. The link column takes the remaining width.
const (
	nameWidth     = 40
	idWidth       = 19
	minLinkWidth  = 24
	defaultHeight = 10
)

// Table lists discovered devices with their resolution outcomes.
// Rows are appended as devices are discovered and updated in place.
type Table struct {
	table    table.Model
	styles   *styles.Styles
	devices  []domain.HardwareDevice
	outcomes []domain.Outcome
	width    int
}

// NewTable creates an empty device table.
func NewTable(s *styles.Styles) *Table {
	if s == nil {
		s = styles.DefaultStyles()
	}

	t := &Table{styles: s, width: 100}

	ts := table.DefaultStyles()
	ts.Header = ts.Header.Foreground(s.Theme().Header).Bold(true)
	ts.Selected = s.Selected

	t.table = table.New(
		table.WithColumns(t.columns()),
		table.WithHeight(defaultHeight),
		table.WithStyles(ts),
	)
	return t
}

func (t *Table) columns() []table.Column {
	linkWidth := t.width - nameWidth - idWidth - 6
	if linkWidth < minLinkWidth {
		linkWidth = minLinkWidth
	}
	return []table.Column{
		{Title: "Device", Width: nameWidth},
		{Title: "Hardware ID", Width: idWidth},
		{Title: "Driver link", Width: linkWidth},
	}
}

// Update forwards navigation keys to the table.
func (t *Table) Update(msg tea.Msg) (*Table, tea.Cmd) {
	var cmd tea.Cmd
	t.table, cmd = t.table.Update(msg)
	return t, cmd
}

// View renders the table.
func (t *Table) View() string {
	return t.table.View()
}

// Add appends a device with a pending outcome.
func (t *Table) Add(device domain.HardwareDevice) {
	t.devices = append(t.devices, device)
	t.outcomes = append(t.outcomes, domain.Pending())
	t.refresh()
}

// SetOutcome updates the outcome of the device at index.
func (t *Table) SetOutcome(index int, outcome domain.Outcome) error {
	if index < 0 || index >= len(t.outcomes) {
		return fmt.Errorf("%w: row %d out of range", domain.ErrInvalidInput, index)
	}
	t.outcomes[index] = outcome
	t.refresh()
	return nil
}

// Selected returns the highlighted device and its outcome.
func (t *Table) Selected() (domain.HardwareDevice, domain.Outcome, bool) {
	i := t.table.Cursor()
	if i < 0 || i >= len(t.devices) {
		return domain.HardwareDevice{}, domain.Outcome{}, false
	}
	return t.devices[i], t.outcomes[i], true
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.devices)
}

// Outcome returns the outcome at index.
func (t *Table) Outcome(index int) domain.Outcome {
	if index < 0 || index >= len(t.outcomes) {
		return domain.Outcome{}
	}
	return t.outcomes[index]
}

// Focus gives the table keyboard focus.
func (t *Table) Focus() {
	t.table.Focus()
}

// Blur removes keyboard focus.
func (t *Table) Blur() {
	t.table.Blur()
}

// Focused returns whether the table has focus.
func (t *Table) Focused() bool {
	return t.table.Focused()
}

// SetDimensions resizes the table.
func (t *Table) SetDimensions(width, height int) {
	t.width = width
	t.table.SetColumns(t.columns())
	t.table.SetWidth(width)
	if height > 3 {
		t.table.SetHeight(height)
	}
}

// Reset removes all rows.
func (t *Table) Reset() {
	t.devices = nil
	t.outcomes = nil
	t.refresh()
}

func (t *Table) refresh() {
	rows := make([]table.Row, len(t.devices))
	for i, d := range t.devices {
		rows[i] = table.Row{d.Name, d.HardwareID(), t.outcomes[i].String()}
	}
	t.table.SetRows(rows)
	// Emptying the table can leave the cursor at -1 or past the new rows.
	if c := t.table.Cursor(); len(rows) > 0 && (c < 0 || c >= len(rows)) {
		t.table.SetCursor(0)
	}
}
