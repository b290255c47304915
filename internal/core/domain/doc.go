// Package domain defines the core entities for driverfinder.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawDescriptor: An identifier string reported by the device inventory
//   - HardwareDevice: A device with a normalised vendor/device ID pair
//   - Outcome: The classified result of resolving one device's driver link
//   - ScanSession: The devices and outcomes of one user-initiated scan
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
