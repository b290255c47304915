package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAIProvider_IsValid(t *testing.T) {
	for _, p := range AllLLMProviders() {
		assert.True(t, p.IsValid(), p)
	}
	assert.False(t, AIProvider("driverpack").IsValid())
}

func TestAIProvider_RequiresAPIKey(t *testing.T) {
	assert.True(t, AIProviderGemini.RequiresAPIKey())
	assert.True(t, AIProviderOpenAI.RequiresAPIKey())
	assert.True(t, AIProviderAnthropic.RequiresAPIKey())
	assert.False(t, AIProviderOllama.RequiresAPIKey())
	assert.True(t, AIProviderOllama.IsLocal())
}

func TestAIProvider_Description(t *testing.T) {
	assert.Equal(t, "Gemini (cloud)", AIProviderGemini.Description())
	assert.Equal(t, "Unknown", AIProvider("x").Description())
}

func TestLLMSettings_IsConfigured(t *testing.T) {
	assert.False(t, LLMSettings{Provider: AIProviderGemini}.IsConfigured())
	assert.True(t, LLMSettings{Provider: AIProviderGemini, APIKey: "k"}.IsConfigured())
	assert.True(t, LLMSettings{Provider: AIProviderOllama}.IsConfigured())
	assert.False(t, LLMSettings{Provider: "nope", APIKey: "k"}.IsConfigured())
}

func TestLLMSettings_WithCredential(t *testing.T) {
	base := LLMSettings{Provider: AIProviderGemini, APIKey: "old"}

	updated := base.WithCredential("new")

	assert.Equal(t, "new", updated.APIKey)
	assert.Equal(t, "old", base.APIKey)
}

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, AIProviderGemini, s.LLM.Provider)
	assert.Equal(t, "gemini-1.5-flash", s.LLM.Model)
	assert.Empty(t, s.LLM.APIKey)
	assert.Zero(t, s.Scan.QueryInterval)
}
