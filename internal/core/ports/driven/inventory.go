package driven

import (
	"context"

	"github.com/custodia-labs/driverfinder/internal/core/domain"
)

// DeviceInventory enumerates hardware descriptors from the operating system.
type DeviceInventory interface {
	// Enumerate returns every descriptor the inventory knows about.
	// Implementations wrap domain.ErrEnumeration when the inventory
	// cannot be queried (missing privilege, unsupported platform).
	Enumerate(ctx context.Context) ([]domain.RawDescriptor, error)
}

// PlatformProbe describes the running operating system.
type PlatformProbe interface {
	// Label returns "<OS> <release> <bitness>", e.g. "Windows 10 64-bit".
	// It never fails; implementations fall back to a runtime-derived label.
	Label(ctx context.Context) string
}
