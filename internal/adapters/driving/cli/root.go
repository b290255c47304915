// Package cli provides the cobra command tree for driverfinder.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/driverfinder/internal/core/domain"
	"github.com/custodia-labs/driverfinder/internal/core/ports/driving"
	"github.com/custodia-labs/driverfinder/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// ScannerBuilder builds a scanner for the given settings.
type ScannerBuilder func(settings domain.AppSettings) driving.Scanner

// PromptWatcher reloads prompt templates until its context ends.
type PromptWatcher interface {
	Run(ctx context.Context) error
}

// Services holds the core services the commands drive.
type Services struct {
	Settings driving.SettingsService
	Actions  driving.LinkActionService
	Scanner  ScannerBuilder
	Watcher  PromptWatcher
}

var (
	settingsService driving.SettingsService
	linkActions     driving.LinkActionService
	newScanner      ScannerBuilder
	promptWatcher   PromptWatcher
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "driverfinder",
	Short: "Find official driver download links for local hardware",
	Long: `driverfinder reads the PCI hardware identifiers of this machine and asks
an LLM for the manufacturer's official driver download page of each device.

Devices are queried one at a time. Each result is either a link, a
"no official link found" answer, or an error.

Run 'driverfinder scan' for a plain terminal report or 'driverfinder tui'
for the interactive interface.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// SetServices injects the core services used by the commands.
func SetServices(s Services) {
	settingsService = s.Settings
	linkActions = s.Actions
	newScanner = s.Scanner
	promptWatcher = s.Watcher
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
