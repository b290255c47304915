//go:build !linux && !windows

package inventory

import (
	"context"
	"fmt"
	"runtime"

	"github.com/custodia-labs/driverfinder/internal/core/domain"
	"github.com/custodia-labs/driverfinder/internal/core/ports/driven"
)

// unsupportedInventory reports that no native inventory exists.
type unsupportedInventory struct{}

// NewSystemInventory returns an inventory that always fails on this platform.
// Use a descriptors file instead.
func NewSystemInventory() driven.DeviceInventory {
	return unsupportedInventory{}
}

func (unsupportedInventory) Enumerate(_ context.Context) ([]domain.RawDescriptor, error) {
	return nil, fmt.Errorf("%w: %w: %s", domain.ErrEnumeration, domain.ErrUnsupportedPlatform, runtime.GOOS)
}
