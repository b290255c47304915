// Command driverfinder resolves official driver download links for the
// hardware installed on this machine.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/driverfinder/internal/adapters/driven/ai"
	"github.com/custodia-labs/driverfinder/internal/adapters/driven/config/file"
	"github.com/custodia-labs/driverfinder/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/driverfinder/internal/adapters/driven/desktop"
	"github.com/custodia-labs/driverfinder/internal/adapters/driven/inventory"
	"github.com/custodia-labs/driverfinder/internal/adapters/driven/platform"
	"github.com/custodia-labs/driverfinder/internal/adapters/driving/cli"
	"github.com/custodia-labs/driverfinder/internal/core/domain"
	"github.com/custodia-labs/driverfinder/internal/core/ports/driven"
	"github.com/custodia-labs/driverfinder/internal/core/ports/driving"
	"github.com/custodia-labs/driverfinder/internal/core/services"
	"github.com/custodia-labs/driverfinder/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

// configDirEnv overrides the ~/.driverfinder directory.
const configDirEnv = "DRIVERFINDER_CONFIG_DIR"

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	configDir := os.Getenv(configDirEnv)
	if configDir == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: resolving config directory: %v\n", err)
			return err
		}
		configDir = dir
	}

	var configStore driven.ConfigStore
	if fileStore, err := file.NewConfigStore(configDir); err == nil {
		configStore = fileStore
	} else {
		logger.Warn("opening config, settings will not be saved: %v", err)
		configStore = memory.NewConfigStore()
	}

	prompts, err := file.NewPromptStore(filepath.Join(configDir, "prompts"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: opening prompts: %v\n", err)
		return err
	}
	// First load creates the prompt directory the watcher needs.
	if _, err := prompts.Load(driven.PromptDriverLink); err != nil {
		logger.Warn("loading prompts: %v", err)
	}

	factory := ai.NewFactory()
	probe := platform.NewProbe()

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Settings: services.NewSettingsService(configStore, ai.NewConfigValidator()),
		Actions:  services.NewLinkActionService(desktop.NewClipboard(), desktop.NewBrowser()),
		Scanner: func(settings domain.AppSettings) driving.Scanner {
			return services.NewScanService(
				factory,
				inventory.New(settings.Scan.DescriptorsFile),
				probe,
				prompts,
				settings,
			)
		},
		Watcher: file.NewPromptWatcher(prompts, prompts.Dir()),
	})

	return cli.Execute()
}
