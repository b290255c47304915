package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/driverfinder/internal/core/domain"
	"github.com/custodia-labs/driverfinder/internal/core/ports/driving"
)

// MockScanner implements driving.Scanner for testing.
type MockScanner struct {
	Events []driving.Event
	Starts int
}

func (m *MockScanner) Scan(context.Context, driving.ScanRequest, driving.EventSink) (*domain.ScanSession, error) {
	return nil, nil
}

func (m *MockScanner) Start(_ context.Context, _ driving.ScanRequest) <-chan driving.Event {
	m.Starts++
	ch := make(chan driving.Event, len(m.Events))
	for _, e := range m.Events {
		ch <- e
	}
	close(ch)
	return ch
}

// MockLinkActions implements driving.LinkActionService for testing.
type MockLinkActions struct {
	Opened []string
}

func (m *MockLinkActions) OpenLink(_ context.Context, url string) error {
	m.Opened = append(m.Opened, url)
	return nil
}

func (m *MockLinkActions) CopyLink(context.Context, string) error { return nil }

func (m *MockLinkActions) IsOpenable(string) bool { return true }

func TestPorts_Validate(t *testing.T) {
	t.Run("missing scanner", func(t *testing.T) {
		assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingScanner)
	})

	t.Run("scanner only", func(t *testing.T) {
		assert.NoError(t, (&Ports{Scanner: &MockScanner{}}).Validate())
	})
}

func TestNewPorts(t *testing.T) {
	scanner := &MockScanner{}
	actions := &MockLinkActions{}

	ports := NewPorts(scanner, actions, nil)

	assert.Equal(t, scanner, ports.Scanner)
	assert.Equal(t, actions, ports.Actions)
	assert.Nil(t, ports.Settings)
	assert.NoError(t, ports.Validate())
}
