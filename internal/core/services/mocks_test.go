package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/driverfinder/internal/core/domain"
	"github.com/custodia-labs/driverfinder/internal/core/ports/driven"
	"github.com/custodia-labs/driverfinder/internal/core/ports/driving"
)

// --- Mock implementations ---

// mockLLM implements driven.LLMService for testing.
// Replies and errors are consumed in call order.
type mockLLM struct {
	mu      sync.Mutex
	pingErr error
	replies []string
	errs    map[int]error
	prompts []string
	opts    []driven.GenerateOptions
	closed  bool
}

func (m *mockLLM) Generate(_ context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.prompts)
	m.prompts = append(m.prompts, prompt)
	m.opts = append(m.opts, opts)
	if err := m.errs[n]; err != nil {
		return "", err
	}
	if n < len(m.replies) {
		return m.replies[n], nil
	}
	return driven.NotFoundMarker, nil
}

func (m *mockLLM) ModelName() string { return "mock-model" }

func (m *mockLLM) Ping(_ context.Context) error { return m.pingErr }

func (m *mockLLM) Close() error {
	m.closed = true
	return nil
}

func (m *mockLLM) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// mockFactory implements driven.LLMFactory.
type mockFactory struct {
	llm       *mockLLM
	createErr error
	settings  domain.LLMSettings
}

func (f *mockFactory) Create(settings domain.LLMSettings) (driven.LLMService, error) {
	f.settings = settings
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.llm, nil
}

// mockInventory implements driven.DeviceInventory.
type mockInventory struct {
	descriptors []domain.RawDescriptor
	err         error
	calls       int
}

func (m *mockInventory) Enumerate(_ context.Context) ([]domain.RawDescriptor, error) {
	m.calls++
	return m.descriptors, m.err
}

// mockPlatform implements driven.PlatformProbe.
type mockPlatform struct {
	label string
	calls int
}

func (m *mockPlatform) Label(_ context.Context) string {
	m.calls++
	return m.label
}

// mockPromptStore implements driven.PromptStore.
type mockPromptStore struct {
	prompts map[string]string
}

func (m *mockPromptStore) Load(name string) (string, error) {
	if p, ok := m.prompts[name]; ok {
		return p, nil
	}
	return "", errors.New("prompt not found")
}

func (m *mockPromptStore) Reload() {}

// recordingSink records events in arrival order.
type recordingSink struct {
	events []driving.Event
}

func (r *recordingSink) sink() driving.EventSink {
	return driving.EventSinkFunc(func(e driving.Event) {
		r.events = append(r.events, e)
	})
}

func (r *recordingSink) ofKind(kind driving.EventKind) []driving.Event {
	var out []driving.Event
	for _, e := range r.events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func (r *recordingSink) statuses() []string {
	var out []string
	for _, e := range r.ofKind(driving.EventStatus) {
		out = append(out, e.Message)
	}
	return out
}

// mockClipboard implements driven.Clipboard.
type mockClipboard struct {
	text string
	err  error
}

func (m *mockClipboard) WriteAll(text string) error {
	m.text = text
	return m.err
}

// mockBrowser implements driven.Browser.
type mockBrowser struct {
	opened []string
	err    error
}

func (m *mockBrowser) Open(url string) error {
	m.opened = append(m.opened, url)
	return m.err
}

// mockValidator implements driven.AIConfigValidator.
type mockValidator struct {
	err    error
	called *domain.LLMSettings
}

func (m *mockValidator) ValidateLLM(config *domain.LLMSettings) error {
	m.called = config
	return m.err
}
