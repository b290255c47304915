//go:build windows

package inventory

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"golang.org/x/sys/windows/registry"

	"github.com/custodia-labs/driverfinder/internal/core/domain"
	"github.com/custodia-labs/driverfinder/internal/core/ports/driven"
	"github.com/custodia-labs/driverfinder/internal/logger"
)

// Ensure PnPInventory implements the interface.
var _ driven.DeviceInventory = (*PnPInventory)(nil)

// pciEnumKey lists PCI devices known to the PnP manager.
const pciEnumKey = `SYSTEM\CurrentControlSet\Enum\PCI`

// PnPInventory enumerates Plug and Play devices.
// It asks wmic for Win32_PnPEntity first and falls back to the registry
// on systems where wmic is missing or disabled.
type PnPInventory struct{}

// NewSystemInventory returns the native inventory for Windows.
func NewSystemInventory() driven.DeviceInventory {
	return &PnPInventory{}
}

// Enumerate lists PnP device descriptors.
func (p *PnPInventory) Enumerate(ctx context.Context) ([]domain.RawDescriptor, error) {
	out, wmicErr := runWMIC(ctx, "path", "Win32_PnPEntity", "get", pnpEntityColumns)
	if wmicErr == nil {
		if descriptors := descriptorsFromWMIC(out); len(descriptors) > 0 {
			return descriptors, nil
		}
	}
	logger.Debug("wmic unavailable (%v), reading registry", wmicErr)

	descriptors, err := registryDescriptors()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEnumeration, err)
	}
	return descriptors, nil
}

// runWMIC runs wmic and returns its stdout.
func runWMIC(ctx context.Context, args ...string) (string, error) {
	var stdout bytes.Buffer

	cmd := exec.CommandContext(ctx, "wmic", args...)
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return "", err
	}
	return stdout.String(), nil
}

// registryDescriptors reads HKLM\SYSTEM\CurrentControlSet\Enum\PCI.
// Each hardware key holds one subkey per device instance.
func registryDescriptors() ([]domain.RawDescriptor, error) {
	root, err := registry.OpenKey(registry.LOCAL_MACHINE, pciEnumKey, registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", pciEnumKey, err)
	}
	defer root.Close()

	hardwareKeys, err := root.ReadSubKeyNames(-1)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", pciEnumKey, err)
	}

	var out []domain.RawDescriptor
	for _, hw := range hardwareKeys {
		path := pciEnumKey + `\` + hw
		k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.ENUMERATE_SUB_KEYS)
		if err != nil {
			continue
		}
		instances, err := k.ReadSubKeyNames(-1)
		k.Close()
		if err != nil {
			continue
		}

		for _, inst := range instances {
			out = append(out, domain.RawDescriptor{
				ID:   `PCI\` + hw + `\` + inst,
				Name: instanceName(path + `\` + inst),
			})
		}
	}
	return out, nil
}

// instanceName prefers FriendlyName over DeviceDesc.
func instanceName(path string) string {
	if name := readRegistryString(registry.LOCAL_MACHINE, path, "FriendlyName"); name != "" {
		return cleanDeviceDesc(name)
	}
	return cleanDeviceDesc(readRegistryString(registry.LOCAL_MACHINE, path, "DeviceDesc"))
}

func readRegistryString(root registry.Key, path, name string) string {
	k, err := registry.OpenKey(root, path, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer k.Close()

	value, _, err := k.GetStringValue(name)
	if err != nil {
		return ""
	}
	return value
}
