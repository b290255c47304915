package domain

import (
	"fmt"
	"time"
)

// ScanSession holds the devices and outcomes of one user-initiated scan.
// A session is owned by a single pipeline run and is never reused.
type ScanSession struct {
	// ID uniquely identifies the session.
	ID string

	// Credential is the operator-supplied access credential.
	Credential string

	// PlatformLabel describes OS name, release and bitness.
	// Computed once per session and passed to every query.
	PlatformLabel string

	// StartedAt is when the session was created.
	StartedAt time.Time

	devices  []HardwareDevice
	outcomes []Outcome
}

// NewScanSession creates an empty session.
func NewScanSession(id, credential, platformLabel string) *ScanSession {
	return &ScanSession{
		ID:            id,
		Credential:    credential,
		PlatformLabel: platformLabel,
		StartedAt:     time.Now(),
	}
}

// AddDevice appends a device with a Pending outcome and returns its index.
func (s *ScanSession) AddDevice(d HardwareDevice) int {
	s.devices = append(s.devices, d)
	s.outcomes = append(s.outcomes, Pending())
	return len(s.devices) - 1
}

// Devices returns a copy of the discovered devices in enumeration order.
func (s *ScanSession) Devices() []HardwareDevice {
	out := make([]HardwareDevice, len(s.devices))
	copy(out, s.devices)
	return out
}

// Outcomes returns a copy of the outcomes, indexed like Devices.
func (s *ScanSession) Outcomes() []Outcome {
	out := make([]Outcome, len(s.outcomes))
	copy(out, s.outcomes)
	return out
}

// Len returns the number of devices.
func (s *ScanSession) Len() int {
	return len(s.devices)
}

// Outcome returns the outcome at index i.
func (s *ScanSession) Outcome(i int) (Outcome, error) {
	if i < 0 || i >= len(s.outcomes) {
		return Outcome{}, fmt.Errorf("%w: index %d out of range", ErrInvalidInput, i)
	}
	return s.outcomes[i], nil
}

// SetOutcome records the outcome for device i.
// Only Pending outcomes may change, and only to a terminal state.
func (s *ScanSession) SetOutcome(i int, o Outcome) error {
	if i < 0 || i >= len(s.outcomes) {
		return fmt.Errorf("%w: index %d out of range", ErrInvalidInput, i)
	}
	if s.outcomes[i].IsTerminal() || !o.IsTerminal() {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.outcomes[i].State, o.State)
	}
	s.outcomes[i] = o
	return nil
}
