package driving

import "github.com/custodia-labs/driverfinder/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetLLMProvider configures the LLM provider.
	SetLLMProvider(provider domain.AIProvider, model, apiKey string) error

	// SetQueryInterval configures the pacing between device queries.
	SetQueryInterval(interval string) error

	// SetDescriptorsFile configures a descriptor file inventory. Empty clears it.
	SetDescriptorsFile(path string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// ValidateLLMConfig validates the current LLM configuration by pinging the provider.
	ValidateLLMConfig() error
}
