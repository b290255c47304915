package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/driverfinder/internal/adapters/driving/tui"
	"github.com/custodia-labs/driverfinder/internal/logger"
)

var tuiAPIKey string

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for driverfinder.

The TUI lets you enter an API key, start a scan, watch devices and their
driver links appear, and open or copy a link.

Prompt files in ~/.driverfinder/prompts are reloaded while the TUI runs.

Controls:
  Enter    - Start scan / Open link
  Tab      - Switch between API key and device table
  c        - Copy link
  Esc      - Back / Cancel
  Ctrl+C   - Quit`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiAPIKey, "api-key", "", "Pre-fill the API key field")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if settingsService == nil || newScanner == nil {
		return errors.New("scan service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	// Log lines would corrupt the alternate screen.
	logger.SetOutput(io.Discard)
	defer logger.SetOutput(os.Stderr)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Prompt reloads run for the lifetime of the TUI
	if promptWatcher != nil {
		go func() {
			if err := promptWatcher.Run(ctx); err != nil {
				logger.Warn("prompt watcher stopped: %v", err)
			}
		}()
	}

	ports := tui.NewPorts(newScanner(*settings), linkActions, settingsService)
	ports.Credential = lookupCredential(tuiAPIKey, settings.LLM)

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(ctx)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
