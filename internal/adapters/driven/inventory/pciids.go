package inventory

import (
	"bufio"
	"io"
	"strings"
)

// pciIDsPaths are the usual locations of the pci.ids database.
var pciIDsPaths = []string{
	"usr/share/hwdata/pci.ids",
	"usr/share/misc/pci.ids",
	"usr/share/pci.ids",
}

// pciNames maps lower-case "vendor" and "vendor:device" keys to names.
type pciNames map[string]string

// parsePCIIDs reads the vendor and device lines of a pci.ids database.
// Subsystem lines and the device class section are skipped.
func parsePCIIDs(r io.Reader) (pciNames, error) {
	names := make(pciNames)

	var vendor string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// The class section comes last.
		if strings.HasPrefix(line, "C ") {
			break
		}

		switch {
		case strings.HasPrefix(line, "\t\t"):
			// subsystem
		case strings.HasPrefix(line, "\t"):
			id, name, ok := splitIDLine(line[1:])
			if ok && vendor != "" {
				names[vendor+":"+id] = name
			}
		default:
			id, name, ok := splitIDLine(line)
			if ok {
				vendor = id
				names[vendor] = name
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// splitIDLine splits "10de  NVIDIA Corporation" into id and name.
func splitIDLine(line string) (id, name string, ok bool) {
	if len(line) < 6 || line[4] != ' ' {
		return "", "", false
	}
	return strings.ToLower(line[:4]), strings.TrimSpace(line[4:]), true
}

// Name returns "<vendor> <device>" for the pair, or "" when unknown.
func (n pciNames) Name(vendorID, deviceID string) string {
	vendorID, deviceID = strings.ToLower(vendorID), strings.ToLower(deviceID)
	device := n[vendorID+":"+deviceID]
	if device == "" {
		return ""
	}
	if vendor := n[vendorID]; vendor != "" {
		return vendor + " " + device
	}
	return device
}
