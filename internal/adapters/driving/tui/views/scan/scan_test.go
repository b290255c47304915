package scan

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/driverfinder/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/driverfinder/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/driverfinder/internal/core/domain"
	"github.com/custodia-labs/driverfinder/internal/core/ports/driving"
)

// mockScanner replays a fixed event list from Start.
type mockScanner struct {
	events      []driving.Event
	starts      int
	credentials []string
}

func (m *mockScanner) Scan(context.Context, driving.ScanRequest, driving.EventSink) (*domain.ScanSession, error) {
	return nil, errors.New("not used")
}

func (m *mockScanner) Start(_ context.Context, req driving.ScanRequest) <-chan driving.Event {
	m.starts++
	m.credentials = append(m.credentials, req.Credential)
	ch := make(chan driving.Event, len(m.events))
	for _, e := range m.events {
		ch <- e
	}
	close(ch)
	return ch
}

// mockActions records link actions.
type mockActions struct {
	opened []string
	copied []string
	err    error
}

func (m *mockActions) OpenLink(_ context.Context, url string) error {
	m.opened = append(m.opened, url)
	return m.err
}

func (m *mockActions) CopyLink(_ context.Context, url string) error {
	m.copied = append(m.copied, url)
	return m.err
}

func (m *mockActions) IsOpenable(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

func testDevice(t *testing.T, id, name string) domain.HardwareDevice {
	t.Helper()
	d, ok := domain.NewHardwareDevice(domain.RawDescriptor{ID: id, Name: name})
	require.True(t, ok)
	return d
}

func scanEvents(t *testing.T, url string) []driving.Event {
	return []driving.Event{
		{Kind: driving.EventStatus, Message: "Scanning local hardware..."},
		{Kind: driving.EventDeviceDiscovered, Device: testDevice(t, `PCI\VEN_10DE&DEV_1E04`, "GPU")},
		{Kind: driving.EventDeviceDiscovered, Device: testDevice(t, `PCI\VEN_8086&DEV_15BC`, "NIC")},
		{Kind: driving.EventStatus, Message: "Searching (1/2): GPU..."},
		{Kind: driving.EventResolutionUpdated, Index: 0, Outcome: domain.Found(url)},
		{Kind: driving.EventStatus, Message: "Searching (2/2): NIC..."},
		{Kind: driving.EventResolutionUpdated, Index: 1, Outcome: domain.NotFound()},
		{Kind: driving.EventStatus, Message: "Scan complete."},
		{Kind: driving.EventCompleted},
	}
}

// drain runs cmd and feeds resulting messages back until the stream ends.
func drain(t *testing.T, v *View, cmd tea.Cmd) *View {
	t.Helper()
	for i := 0; cmd != nil && i < 100; i++ {
		msg := cmd()
		v, cmd = v.Update(msg)
		if _, done := msg.(messages.ScanFinished); done {
			break
		}
	}
	return v
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestView_ScanPopulatesTable(t *testing.T) {
	scanner := &mockScanner{events: scanEvents(t, "https://www.nvidia.com/drivers")}
	v := NewView(nil, scanner, &mockActions{})
	v.SetDimensions(120, 40)
	v.SetCredential("AIzaKey")

	v, cmd := v.Update(key("enter"))
	require.NotNil(t, cmd)
	assert.True(t, v.Running())

	v = drain(t, v, cmd)

	assert.False(t, v.Running())
	assert.Equal(t, []string{"AIzaKey"}, scanner.credentials)
	assert.Equal(t, 2, v.Table().Len())
	assert.Equal(t, domain.OutcomeFound, v.Table().Outcome(0).State)
	assert.Equal(t, domain.OutcomeNotFound, v.Table().Outcome(1).State)
	assert.Equal(t, status.StateCompleted, v.Status().State())
	assert.Equal(t, "Scan complete.", v.Status().Message())
}

func TestView_EmptyCredentialDoesNotScan(t *testing.T) {
	scanner := &mockScanner{}
	v := NewView(nil, scanner, nil)

	v, cmd := v.Update(key("enter"))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, scanner.starts)
	assert.Equal(t, status.StateError, v.Status().State())
	assert.Equal(t, ErrCredentialRequired.Error(), v.Status().Message())
}

func TestView_ScanDisabledWhileRunning(t *testing.T) {
	scanner := &mockScanner{events: scanEvents(t, "https://example.com")}
	v := NewView(nil, scanner, nil)
	v.SetCredential("key")

	v, _ = v.Update(key("enter"))
	v, cmd := v.Update(key("enter"))

	assert.Nil(t, cmd)
	assert.Equal(t, 1, scanner.starts)
}

func TestView_ErrorStatus(t *testing.T) {
	scanner := &mockScanner{events: []driving.Event{
		{Kind: driving.EventStatus, Message: "ERROR: API key is invalid or the service is unreachable."},
		{Kind: driving.EventCompleted},
	}}
	v := NewView(nil, scanner, nil)
	v.SetCredential("bad")

	v, cmd := v.Update(key("enter"))
	v = drain(t, v, cmd)

	assert.Equal(t, status.StateError, v.Status().State())
	assert.Equal(t, 0, v.Table().Len())
}

func TestView_OpenLinkRequiresConfirmation(t *testing.T) {
	actions := &mockActions{}
	v := NewView(nil, &mockScanner{events: scanEvents(t, "https://www.nvidia.com/drivers")}, actions)
	v.SetDimensions(120, 40)
	v.SetCredential("key")

	v, cmd := v.Update(key("enter"))
	v = drain(t, v, cmd)

	v, _ = v.Update(key("tab"))
	v, _ = v.Update(key("o"))
	assert.Equal(t, "https://www.nvidia.com/drivers", v.ConfirmURL())
	assert.Empty(t, actions.opened)
	assert.Contains(t, v.View(), "official website")

	v, cmd = v.Update(key("y"))
	require.NotNil(t, cmd)
	assert.Empty(t, v.ConfirmURL())

	v, _ = v.Update(cmd())
	assert.Equal(t, []string{"https://www.nvidia.com/drivers"}, actions.opened)
	assert.Contains(t, v.View(), "Link opened.")
}

func TestView_OpenLinkCancelled(t *testing.T) {
	actions := &mockActions{}
	v := NewView(nil, &mockScanner{events: scanEvents(t, "https://www.nvidia.com/drivers")}, actions)
	v.SetCredential("key")

	v, cmd := v.Update(key("enter"))
	v = drain(t, v, cmd)
	v, _ = v.Update(key("tab"))
	v, _ = v.Update(key("enter"))
	require.NotEmpty(t, v.ConfirmURL())

	v, cmd = v.Update(key("n"))
	assert.Nil(t, cmd)
	assert.Empty(t, v.ConfirmURL())
	assert.Empty(t, actions.opened)
}

func TestView_NonHTTPLinkIsNotOpenable(t *testing.T) {
	v := NewView(nil, &mockScanner{events: scanEvents(t, "ftp://drivers.example.com")}, &mockActions{})
	v.SetCredential("key")

	v, cmd := v.Update(key("enter"))
	v = drain(t, v, cmd)
	v, _ = v.Update(key("tab"))
	v, _ = v.Update(key("o"))

	assert.Empty(t, v.ConfirmURL())
	assert.Contains(t, v.View(), "cannot be opened")
}

func TestView_NotFoundRowHasNoActions(t *testing.T) {
	actions := &mockActions{}
	v := NewView(nil, &mockScanner{events: scanEvents(t, "https://example.com")}, actions)
	v.SetCredential("key")

	v, cmd := v.Update(key("enter"))
	v = drain(t, v, cmd)
	v, _ = v.Update(key("tab"))
	v, _ = v.Update(key("down"))
	v, _ = v.Update(key("o"))
	v, cmd = v.Update(key("c"))

	assert.Empty(t, v.ConfirmURL())
	assert.Nil(t, cmd)
}

func TestView_CopyLink(t *testing.T) {
	actions := &mockActions{}
	v := NewView(nil, &mockScanner{events: scanEvents(t, "https://www.nvidia.com/drivers")}, actions)
	v.SetCredential("key")

	v, cmd := v.Update(key("enter"))
	v = drain(t, v, cmd)
	v, _ = v.Update(key("tab"))
	v, cmd = v.Update(key("c"))
	require.NotNil(t, cmd)

	v, _ = v.Update(cmd())
	assert.Equal(t, []string{"https://www.nvidia.com/drivers"}, actions.copied)
	assert.Contains(t, v.View(), "Link copied.")
}

func TestView_LinkActionError(t *testing.T) {
	v := NewView(nil, &mockScanner{}, &mockActions{})

	v, _ = v.Update(messages.LinkActionDone{Action: messages.LinkCopied, Err: errors.New("no clipboard")})
	assert.Contains(t, v.View(), "Could not copy link: no clipboard")
}

func TestView_EscReturnsToMenu(t *testing.T) {
	v := NewView(nil, &mockScanner{}, nil)

	_, cmd := v.Update(key("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}

func TestView_OldStreamCloseDoesNotEndNewScan(t *testing.T) {
	scanner := &mockScanner{events: []driving.Event{{Kind: driving.EventCompleted}}}
	v := NewView(nil, scanner, &mockActions{})
	v.SetDimensions(120, 40)
	v.SetCredential("AIzaKey")

	v, first := v.Update(key("enter"))
	require.NotNil(t, first)
	v, first = v.Update(first())
	require.False(t, v.Running())

	scanner.events = []driving.Event{
		{Kind: driving.EventDeviceDiscovered, Device: testDevice(t, `PCI\VEN_10DE&DEV_1E04`, "GPU")},
	}
	v, second := v.Update(key("enter"))
	require.NotNil(t, second)
	require.Equal(t, 2, scanner.starts)

	v, _ = v.Update(first())
	assert.True(t, v.Running(), "close of the previous stream must not end the new scan")

	v = drain(t, v, second)
	assert.False(t, v.Running())
	assert.Equal(t, 1, v.Table().Len())
}
