package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/driverfinder/internal/core/ports/driving"
)

var (
	scanAPIKey      string
	scanDescriptors string
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan local hardware and resolve driver links",
	Long: `Enumerate the PCI devices of this machine and ask the configured LLM for
the official driver download page of each one, in order.

The API key is taken from --api-key, then DRIVERFINDER_API_KEY, then the
provider's own variable (GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY),
then the stored settings. If none is set you are prompted for it.

Examples:
  driverfinder scan
  driverfinder scan --api-key AIza...
  driverfinder scan --descriptors devices.txt`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanAPIKey, "api-key", "", "API key for the LLM provider")
	scanCmd.Flags().StringVar(&scanDescriptors, "descriptors", "",
		"Read device descriptors from a file instead of the system inventory")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, _ []string) error {
	if settingsService == nil || newScanner == nil {
		return errors.New("scan service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if scanDescriptors != "" {
		settings.Scan.DescriptorsFile = scanDescriptors
	}

	credential := resolveCredential(cmd, scanAPIKey, settings.LLM)
	if credential == "" {
		return errors.New("an API key is required to scan")
	}

	out := cmd.OutOrStdout()
	scanner := newScanner(*settings)
	session, err := scanner.Scan(cmd.Context(), driving.ScanRequest{Credential: credential}, newTerminalSink(out))
	printReport(out, session)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	return nil
}
