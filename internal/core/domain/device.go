package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// UnknownDeviceName is the display name used when the inventory reports none.
const UnknownDeviceName = "Unknown Device"

// identifierPattern matches the PnP vendor/device pair, e.g. VEN_10DE&DEV_1E04.
var identifierPattern = regexp.MustCompile(`(?i)VEN_([0-9A-F]{4})&DEV_([0-9A-F]{4})`)

// RawDescriptor is one entry reported by the device inventory.
type RawDescriptor struct {
	// ID is the raw identifier string, e.g. PCI\VEN_10DE&DEV_1E04&SUBSYS_...
	ID string

	// Name is the human-readable device name. May be empty.
	Name string
}

// HardwareDevice is a device whose descriptor carried a vendor/device pair.
// Values are immutable once created.
type HardwareDevice struct {
	// Name is the display name (never empty).
	Name string

	// VendorID is the 4-digit upper-case hex vendor code.
	VendorID string

	// DeviceID is the 4-digit upper-case hex device code.
	DeviceID string

	// Descriptor is the raw identifier the device was extracted from.
	Descriptor string
}

// HardwareID renders the identifier pair as VEN_XXXX&DEV_XXXX.
func (d HardwareDevice) HardwareID() string {
	return fmt.Sprintf("VEN_%s&DEV_%s", d.VendorID, d.DeviceID)
}

// ExtractIdentifiers returns the first VEN_xxxx&DEV_xxxx pair in descriptor,
// upper-cased. ok is false when the descriptor carries no such pair.
func ExtractIdentifiers(descriptor string) (vendorID, deviceID string, ok bool) {
	m := identifierPattern.FindStringSubmatch(descriptor)
	if m == nil {
		return "", "", false
	}
	return strings.ToUpper(m[1]), strings.ToUpper(m[2]), true
}

// NewHardwareDevice builds a device from a raw descriptor.
// Returns false when the descriptor does not contain both identifiers.
func NewHardwareDevice(raw RawDescriptor) (HardwareDevice, bool) {
	ven, dev, ok := ExtractIdentifiers(raw.ID)
	if !ok {
		return HardwareDevice{}, false
	}

	name := strings.TrimSpace(raw.Name)
	if name == "" {
		name = UnknownDeviceName
	}

	return HardwareDevice{
		Name:       name,
		VendorID:   ven,
		DeviceID:   dev,
		Descriptor: raw.ID,
	}, true
}

// TruncateName shortens a display name to at most limit runes.
func TruncateName(name string, limit int) string {
	r := []rune(name)
	if limit < 0 || len(r) <= limit {
		return name
	}
	return string(r[:limit])
}
