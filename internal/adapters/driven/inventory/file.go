package inventory

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/custodia-labs/driverfinder/internal/core/domain"
	"github.com/custodia-labs/driverfinder/internal/core/ports/driven"
)

// Ensure FileInventory implements the interface.
var _ driven.DeviceInventory = (*FileInventory)(nil)

// FileInventory reads descriptors from a text file, one per line:
//
//	PCI\VEN_10DE&DEV_1E04&SUBSYS_12A31462  NVIDIA GeForce RTX 2080 Ti
//
// The descriptor is the first field; the rest of the line is the name.
// Blank lines and lines starting with # are skipped.
type FileInventory struct {
	path string
}

// NewFileInventory creates a file inventory reading path.
func NewFileInventory(path string) *FileInventory {
	return &FileInventory{path: path}
}

// Enumerate reads all descriptors from the file.
func (f *FileInventory) Enumerate(_ context.Context) ([]domain.RawDescriptor, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open descriptors file: %w", domain.ErrEnumeration, err)
	}
	defer file.Close()

	descriptors, err := parseDescriptors(file)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrEnumeration, f.path, err)
	}
	return descriptors, nil
}

// parseDescriptors parses the descriptor file format.
func parseDescriptors(r io.Reader) ([]domain.RawDescriptor, error) {
	var out []domain.RawDescriptor

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		id, name := line, ""
		if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
			id, name = line[:i], strings.TrimSpace(line[i:])
		}
		out = append(out, domain.RawDescriptor{ID: id, Name: name})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
