package cli

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/driverfinder/internal/core/domain"
)

// Test helper functions in settings.go

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Short key",
			input:    "abc123",
			expected: "****",
		},
		{
			name:     "Exactly 8 chars",
			input:    "12345678",
			expected: "****",
		},
		{
			name:     "Long key",
			input:    "sk-1234567890abcdef",
			expected: "sk-1...cdef",
		},
		{
			name:     "Very long key",
			input:    "sk-proj-1234567890abcdefghijklmnop",
			expected: "sk-p...mnop",
		},
		{
			name:     "Empty key",
			input:    "",
			expected: "****",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := maskAPIKey(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		maxVal     int
		defaultVal int
		expected   int
	}{
		{
			name:       "Empty input returns default",
			input:      "",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Valid choice within range",
			input:      "3",
			maxVal:     5,
			defaultVal: 1,
			expected:   3,
		},
		{
			name:       "Choice below minimum returns default",
			input:      "0",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Choice above maximum returns default",
			input:      "6",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Invalid input returns default",
			input:      "abc",
			maxVal:     5,
			defaultVal: 2,
			expected:   2,
		},
		{
			name:       "Negative number returns default",
			input:      "-1",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Whitespace returns default",
			input:      "   ",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Maximum value is valid",
			input:      "5",
			maxVal:     5,
			defaultVal: 1,
			expected:   5,
		},
		{
			name:       "Minimum value is valid",
			input:      "1",
			maxVal:     5,
			defaultVal: 3,
			expected:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseChoice(tt.input, tt.maxVal, tt.defaultVal)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSettingsShow(t *testing.T) {
	ts := setupTestServices(t)
	ts.settings.settings.LLM.APIKey = "AIzaSyExampleKey1234"

	out, err := execute(t, "", "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Gemini (cloud)")
	assert.Contains(t, out, "AIza...1234")
	assert.NotContains(t, out, "AIzaSyExampleKey1234")
	assert.Contains(t, out, "Query interval: none")
	assert.Contains(t, out, "Inventory: system")
}

func TestSettingsShow_ScanOptions(t *testing.T) {
	ts := setupTestServices(t)
	ts.settings.settings.Scan.QueryInterval = 2 * time.Second
	ts.settings.settings.Scan.DescriptorsFile = "/tmp/devices.txt"

	out, err := execute(t, "", "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "Query interval: 2s")
	assert.Contains(t, out, "Inventory: /tmp/devices.txt")
	assert.Contains(t, out, "API Key: (not set)")
}

func TestSettingsInterval(t *testing.T) {
	ts := setupTestServices(t)

	_, err := execute(t, "", "settings", "interval", "500ms")
	require.NoError(t, err)
	assert.Equal(t, "500ms", ts.settings.interval)

	_, err = execute(t, "", "settings", "interval", "soon")
	assert.Error(t, err)
}

func TestSettingsDescriptors(t *testing.T) {
	ts := setupTestServices(t)

	out, err := execute(t, "", "settings", "descriptors", "/tmp/devices.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "Reading device descriptors from /tmp/devices.txt")

	out, err = execute(t, "", "settings", "descriptors")
	require.NoError(t, err)
	assert.Contains(t, out, "system device inventory")
	require.NotNil(t, ts.settings.descriptors)
	assert.Empty(t, *ts.settings.descriptors)
}

func TestSettingsLLM_LocalProvider(t *testing.T) {
	ts := setupTestServices(t)

	// Choice 2 is Ollama, which needs no API key; the model keeps its default.
	out, err := execute(t, "2\n\n", "settings", "llm")

	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderOllama, ts.settings.settings.LLM.Provider)
	assert.Equal(t, "llama3.2", ts.settings.settings.LLM.Model)
	assert.Equal(t, 1, ts.settings.validated)
	assert.Contains(t, out, "LLM provider configured: Ollama (local)")
}

func TestSettingsLLM_ValidationFailure(t *testing.T) {
	ts := setupTestServices(t)
	ts.settings.validateErr = errors.New("connection refused")

	out, err := execute(t, "2\nmistral\n", "settings", "llm")

	require.Error(t, err)
	assert.Contains(t, out, "FAILED: connection refused")
	assert.Equal(t, "mistral", ts.settings.settings.LLM.Model)
}
