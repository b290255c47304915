package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/driverfinder/internal/core/domain"
)

// credentialEnv overrides the configured API key for any provider.
const credentialEnv = "DRIVERFINDER_API_KEY"

// localCredential stands in for the API key of providers that need none.
const localCredential = "local"

// providerEnv maps cloud providers to their conventional key variables.
var providerEnv = map[domain.AIProvider]string{
	domain.AIProviderGemini:    "GEMINI_API_KEY",
	domain.AIProviderOpenAI:    "OPENAI_API_KEY",
	domain.AIProviderAnthropic: "ANTHROPIC_API_KEY",
}

// promptCredential asks for the API key on the terminal. Tests replace it.
var promptCredential = func(cmd *cobra.Command) string {
	cmd.Print("Enter API key: ")
	key := readPassword()
	cmd.Println()
	return key
}

// lookupCredential returns the first non-empty API key among the flag,
// DRIVERFINDER_API_KEY, the provider's own variable and the stored
// settings. Providers without keys get a placeholder.
func lookupCredential(flagValue string, llm domain.LLMSettings) string {
	if key := strings.TrimSpace(flagValue); key != "" {
		return key
	}
	if key := strings.TrimSpace(os.Getenv(credentialEnv)); key != "" {
		return key
	}
	if name, ok := providerEnv[llm.Provider]; ok {
		if key := strings.TrimSpace(os.Getenv(name)); key != "" {
			return key
		}
	}
	if key := strings.TrimSpace(llm.APIKey); key != "" {
		return key
	}
	if !llm.Provider.RequiresAPIKey() {
		return localCredential
	}
	return ""
}

// resolveCredential is lookupCredential falling back to a terminal prompt.
func resolveCredential(cmd *cobra.Command, flagValue string, llm domain.LLMSettings) string {
	if key := lookupCredential(flagValue, llm); key != "" {
		return key
	}
	return strings.TrimSpace(promptCredential(cmd))
}
