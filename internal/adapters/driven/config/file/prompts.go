package file

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/custodia-labs/driverfinder/internal/core/ports/driven"
)

var _ driven.PromptStore = (*PromptStore)(nil)

const (
	promptExt  = ".txt"
	readmeFile = "README.md"
)

//go:embed prompts_readme.md
var readme string

// builtinPrompts seeds new prompt files and stands in when a file is missing
// or unreadable.
var builtinPrompts = map[string]string{
	driven.PromptDriverLink: driven.DefaultDriverLinkPrompt,
}

// PromptStore serves prompt templates from <dir>/<name>.txt.
//
// Nothing touches the disk until the first Load, which creates the directory
// and writes the built-in prompts and a README without overwriting user edits.
// Loaded prompts are cached until Reload.
type PromptStore struct {
	dir string

	seed    sync.Once
	seedErr error

	mu    sync.RWMutex
	cache map[string]string
}

// NewPromptStore returns a store rooted at dir, or ~/.driverfinder/prompts
// when dir is empty.
func NewPromptStore(dir string) (*PromptStore, error) {
	if dir == "" {
		base, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "prompts")
	}
	return &PromptStore{dir: dir, cache: map[string]string{}}, nil
}

// Load returns the named template. A missing or unreadable file falls back to
// the built-in template; names without one are an error.
func (s *PromptStore) Load(name string) (string, error) {
	s.seed.Do(func() { s.seedErr = s.seedDir() })

	if s.seedErr == nil {
		if p, ok := s.cached(name); ok {
			return p, nil
		}
		p, err := s.read(name)
		if err == nil {
			return s.store(name, p), nil
		}
		if builtin, ok := builtinPrompts[name]; ok {
			return builtin, nil
		}
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	}

	if builtin, ok := builtinPrompts[name]; ok {
		return builtin, nil
	}
	return "", fmt.Errorf("load prompt %q: %w", name, s.seedErr)
}

// Reload drops cached templates so the next Load rereads the files.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	clear(s.cache)
	s.mu.Unlock()
}

// Dir returns the prompt directory.
func (s *PromptStore) Dir() string {
	return s.dir
}

func (s *PromptStore) cached(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.cache[name]
	return p, ok
}

// store caches p unless a concurrent Load got there first, and returns the
// cached value.
func (s *PromptStore) store(name, p string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.cache[name]; ok {
		return prev
	}
	s.cache[name] = p
	return p
}

func (s *PromptStore) read(name string) (string, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, name+promptExt))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func (s *PromptStore) seedDir() error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create prompt directory: %w", err)
	}
	for name, content := range builtinPrompts {
		if err := writeIfMissing(filepath.Join(s.dir, name+promptExt), content); err != nil {
			return fmt.Errorf("write default prompt %q: %w", name, err)
		}
	}
	text := strings.ReplaceAll(readme, "MARKER", driven.NotFoundMarker)
	if err := writeIfMissing(filepath.Join(s.dir, readmeFile), text); err != nil {
		return fmt.Errorf("write prompt readme: %w", err)
	}
	return nil
}

func writeIfMissing(path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close() //nolint:errcheck
		return err
	}
	return f.Close()
}
