package services

import (
	"fmt"
	"time"

	"github.com/custodia-labs/driverfinder/internal/core/domain"
	"github.com/custodia-labs/driverfinder/internal/core/ports/driven"
	"github.com/custodia-labs/driverfinder/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyLLMProvider     = "llm.provider"
	keyLLMModel        = "llm.model"
	keyLLMBaseURL      = "llm.base_url"
	keyLLMAPIKey       = "llm.api_key"
	keyQueryInterval   = "scan.query_interval"
	keyDescriptorsFile = "scan.descriptors_file"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	aiValidator driven.AIConfigValidator
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore, aiValidator driven.AIConfigValidator) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		aiValidator: aiValidator,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	provider := s.getProvider(keyLLMProvider, defaults.LLM.Provider)
	model := s.configStore.GetString(keyLLMModel)
	if model == "" {
		model = domain.DefaultLLMModels()[provider]
	}

	interval, err := s.getDuration(keyQueryInterval, defaults.Scan.QueryInterval)
	if err != nil {
		return nil, err
	}

	return &domain.AppSettings{
		LLM: domain.LLMSettings{
			Provider: provider,
			Model:    model,
			BaseURL:  s.configStore.GetString(keyLLMBaseURL), // No default - empty is valid for cloud providers
			APIKey:   s.configStore.GetString(keyLLMAPIKey),
		},
		Scan: domain.ScanSettings{
			QueryInterval:   interval,
			DescriptorsFile: s.configStore.GetString(keyDescriptorsFile),
		},
	}, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyLLMProvider, settings.LLM.Provider.String()); err != nil {
		return fmt.Errorf("save llm provider: %w", err)
	}
	if err := s.configStore.Set(keyLLMModel, settings.LLM.Model); err != nil {
		return fmt.Errorf("save llm model: %w", err)
	}
	if err := s.configStore.Set(keyLLMBaseURL, settings.LLM.BaseURL); err != nil {
		return fmt.Errorf("save llm base_url: %w", err)
	}
	if settings.LLM.APIKey != "" {
		if err := s.configStore.Set(keyLLMAPIKey, settings.LLM.APIKey); err != nil {
			return fmt.Errorf("save llm api_key: %w", err)
		}
	}

	if err := s.configStore.Set(keyQueryInterval, settings.Scan.QueryInterval.String()); err != nil {
		return fmt.Errorf("save query interval: %w", err)
	}
	if settings.Scan.DescriptorsFile == "" {
		if err := s.configStore.Delete(keyDescriptorsFile); err != nil {
			return fmt.Errorf("clear descriptors file: %w", err)
		}
	} else if err := s.configStore.Set(keyDescriptorsFile, settings.Scan.DescriptorsFile); err != nil {
		return fmt.Errorf("save descriptors file: %w", err)
	}

	return nil
}

// SetLLMProvider configures the LLM provider.
// An empty apiKey keeps the stored key; the key may also be supplied per scan.
func (s *SettingsService) SetLLMProvider(provider domain.AIProvider, model, apiKey string) error {
	if !provider.IsValid() {
		return fmt.Errorf("invalid LLM provider: %s", provider)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	if settings.LLM.Provider != provider {
		// A key issued by one provider is useless to another.
		if err := s.configStore.Delete(keyLLMAPIKey); err != nil {
			return fmt.Errorf("clear llm api_key: %w", err)
		}
		settings.LLM.APIKey = ""
	}
	settings.LLM.Provider = provider

	// Set model - use provided or default
	if model != "" {
		settings.LLM.Model = model
	} else {
		settings.LLM.Model = domain.DefaultLLMModels()[provider]
	}

	// Set base URL based on provider type
	if provider.IsLocal() {
		if settings.LLM.BaseURL == "" {
			settings.LLM.BaseURL = "http://localhost:11434"
		}
	} else {
		settings.LLM.BaseURL = ""
	}

	if apiKey != "" {
		settings.LLM.APIKey = apiKey
	}

	return s.Save(settings)
}

// SetQueryInterval configures the pacing between device queries.
func (s *SettingsService) SetQueryInterval(interval string) error {
	d, err := time.ParseDuration(interval)
	if err != nil {
		return fmt.Errorf("%w: query interval %q: %w", domain.ErrInvalidInput, interval, err)
	}
	if d < 0 {
		return fmt.Errorf("%w: query interval must not be negative", domain.ErrInvalidInput)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Scan.QueryInterval = d
	return s.Save(settings)
}

// SetDescriptorsFile configures a descriptor file inventory. Empty clears it.
func (s *SettingsService) SetDescriptorsFile(path string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Scan.DescriptorsFile = path
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ValidateLLMConfig validates the current LLM configuration by pinging the provider.
func (s *SettingsService) ValidateLLMConfig() error {
	if s.aiValidator == nil {
		return nil
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return s.aiValidator.ValidateLLM(&settings.LLM)
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getProvider(key string, defaultVal domain.AIProvider) domain.AIProvider {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	provider := domain.AIProvider(val)
	if !provider.IsValid() {
		return defaultVal
	}
	return provider
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("%w: %s = %q: %w", domain.ErrInvalidInput, key, val, err)
	}
	return d, nil
}
