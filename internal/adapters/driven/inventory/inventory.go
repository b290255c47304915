// Package inventory provides device inventory adapters.
//
// The native inventory depends on the platform: Windows reads Win32_PnPEntity
// through wmic with a registry fallback, Linux walks the PCI bus in sysfs.
// A descriptor file can replace the native inventory on any platform.
package inventory

import (
	"github.com/custodia-labs/driverfinder/internal/core/ports/driven"
)

// New returns the inventory for the given settings.
// A non-empty descriptorsFile selects the file inventory.
func New(descriptorsFile string) driven.DeviceInventory {
	if descriptorsFile != "" {
		return NewFileInventory(descriptorsFile)
	}
	return NewSystemInventory()
}
