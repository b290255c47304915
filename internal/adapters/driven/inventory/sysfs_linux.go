//go:build linux

package inventory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/driverfinder/internal/core/domain"
	"github.com/custodia-labs/driverfinder/internal/core/ports/driven"
	"github.com/custodia-labs/driverfinder/internal/logger"
)

// Ensure SysfsInventory implements the interface.
var _ driven.DeviceInventory = (*SysfsInventory)(nil)

// pciDevicesPath is the PCI device directory relative to the root.
const pciDevicesPath = "sys/bus/pci/devices"

// SysfsInventory enumerates PCI devices from /sys/bus/pci/devices.
// Each device becomes a PCI\VEN_xxxx&DEV_xxxx descriptor; names come from
// the pci.ids database when it is installed.
type SysfsInventory struct {
	root string
}

// NewSystemInventory returns the native inventory for Linux.
func NewSystemInventory() driven.DeviceInventory {
	return NewSysfsInventory("/")
}

// NewSysfsInventory creates an inventory reading sysfs under root.
func NewSysfsInventory(root string) *SysfsInventory {
	return &SysfsInventory{root: root}
}

// Enumerate lists PCI devices in bus address order.
func (s *SysfsInventory) Enumerate(ctx context.Context) ([]domain.RawDescriptor, error) {
	dir := filepath.Join(s.root, pciDevicesPath)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrEnumeration, dir, err)
	}

	names := s.loadPCINames()

	addrs := make([]string, 0, len(entries))
	for _, entry := range entries {
		addrs = append(addrs, entry.Name())
	}
	sort.Strings(addrs)

	var out []domain.RawDescriptor
	for _, addr := range addrs {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrEnumeration, err)
		}

		vendor, vendorErr := readHexID(filepath.Join(dir, addr, "vendor"))
		device, deviceErr := readHexID(filepath.Join(dir, addr, "device"))
		if vendorErr != nil || deviceErr != nil {
			logger.Debug("skipping PCI device %s: unreadable ids", addr)
			continue
		}

		out = append(out, domain.RawDescriptor{
			ID:   fmt.Sprintf(`PCI\VEN_%s&DEV_%s`, vendor, device),
			Name: names.Name(vendor, device),
		})
	}

	return out, nil
}

// loadPCINames loads the first readable pci.ids database.
// A missing database only means devices have no names.
func (s *SysfsInventory) loadPCINames() pciNames {
	for _, p := range pciIDsPaths {
		f, err := os.Open(filepath.Join(s.root, p))
		if err != nil {
			continue
		}
		names, err := parsePCIIDs(f)
		f.Close()
		if err == nil {
			return names
		}
		logger.Debug("parse %s: %v", p, err)
	}
	return pciNames{}
}

// readHexID reads a sysfs id file such as "0x10de" and returns "10DE".
func readHexID(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	id := strings.TrimPrefix(strings.TrimSpace(string(data)), "0x")
	if len(id) != 4 {
		return "", fmt.Errorf("unexpected id %q in %s", id, path)
	}
	return strings.ToUpper(id), nil
}
