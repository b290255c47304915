package file

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/driverfinder/internal/core/ports/driven"
	"github.com/custodia-labs/driverfinder/internal/logger"
)

// PromptWatcher reloads a PromptStore whenever a prompt file in its
// directory is written, created, removed or renamed.
type PromptWatcher struct {
	store driven.PromptStore
	dir   string
}

// NewPromptWatcher creates a watcher over dir that reloads store.
func NewPromptWatcher(store driven.PromptStore, dir string) *PromptWatcher {
	return &PromptWatcher{
		store: store,
		dir:   dir,
	}
}

// Run watches the prompt directory until ctx is cancelled.
// The directory must exist; PromptStore creates it on first Load.
func (w *PromptWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	logger.Debug("watching prompts in %s", w.dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if w.handleFsEvent(event) {
				logger.Info("prompt %s changed, reloading", filepath.Base(event.Name))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("prompt watcher: %v", err)
		}
	}
}

// handleFsEvent reloads the store for prompt file changes.
// Returns true if the store was reloaded.
func (w *PromptWatcher) handleFsEvent(event fsnotify.Event) bool {
	if !strings.HasSuffix(event.Name, ".txt") {
		return false
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	w.store.Reload()
	return true
}
