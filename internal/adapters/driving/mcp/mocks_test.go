package mcp

import (
	"context"

	"github.com/custodia-labs/driverfinder/internal/core/domain"
	"github.com/custodia-labs/driverfinder/internal/core/ports/driving"
)

// mockScanner is a mock implementation of driving.Scanner.
// It replays status lines to the sink and returns a fixed session.
type mockScanner struct {
	session *domain.ScanSession
	status  []string
	err     error

	gotCredential string
}

func (m *mockScanner) Scan(
	_ context.Context,
	req driving.ScanRequest,
	sink driving.EventSink,
) (*domain.ScanSession, error) {
	m.gotCredential = req.Credential
	for _, line := range m.status {
		sink.OnStatus(line)
	}
	if m.session != nil {
		sink.OnCompleted()
	}
	return m.session, m.err
}

func (m *mockScanner) Start(_ context.Context, _ driving.ScanRequest) <-chan driving.Event {
	ch := make(chan driving.Event)
	close(ch)
	return ch
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error { return m.err }

func (m *mockSettingsService) SetLLMProvider(_ domain.AIProvider, _, _ string) error { return m.err }

func (m *mockSettingsService) SetQueryInterval(_ string) error { return m.err }

func (m *mockSettingsService) SetDescriptorsFile(_ string) error { return m.err }

func (m *mockSettingsService) GetDefaults() domain.AppSettings { return domain.DefaultAppSettings() }

func (m *mockSettingsService) ValidateLLMConfig() error { return m.err }

// newTestSession builds a session with one device per outcome.
func newTestSession(outcomes ...domain.Outcome) *domain.ScanSession {
	session := domain.NewScanSession("session-1", "key", "Windows 10 64-bit")
	for i, outcome := range outcomes {
		device, _ := domain.NewHardwareDevice(domain.RawDescriptor{
			ID:   `PCI\VEN_10DE&DEV_1E0` + string(rune('0'+i)),
			Name: "Device " + string(rune('A'+i)),
		})
		session.AddDevice(device)
		if outcome.IsTerminal() {
			_ = session.SetOutcome(i, outcome)
		}
	}
	return session
}
