// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The resolution pipeline lives here: ScanService drives one scan from
// credential verification to completion, and LinkResolver turns one device
// into one classified Outcome.
package services
