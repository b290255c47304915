package driving

import (
	"context"

	"github.com/custodia-labs/driverfinder/internal/core/domain"
)

// Scanner runs the driver link resolution pipeline.
type Scanner interface {
	// Scan runs one scan synchronously, reporting to sink in order.
	// It always ends with exactly one sink.OnCompleted call.
	Scan(ctx context.Context, req ScanRequest, sink EventSink) (*domain.ScanSession, error)

	// Start runs one scan on a background goroutine and returns its ordered
	// event stream. The channel is closed after the EventCompleted event.
	Start(ctx context.Context, req ScanRequest) <-chan Event
}

// ScanRequest carries the operator input for one scan.
type ScanRequest struct {
	// Credential is the knowledge service credential. Callers reject empty
	// credentials before invoking the scanner.
	Credential string
}

// EventSink consumes pipeline progress. Implementations only record or
// display; they must not call back into the scanner.
type EventSink interface {
	// OnStatus reports a human-readable status line.
	OnStatus(message string)

	// OnDeviceDiscovered reports a device as soon as it is extracted.
	OnDeviceDiscovered(device domain.HardwareDevice)

	// OnResolutionUpdated reports the outcome for the device at index.
	OnResolutionUpdated(index int, outcome domain.Outcome)

	// OnCompleted reports the end of the scan, whatever its result.
	OnCompleted()
}

// EventKind identifies the type of a pipeline Event.
type EventKind int

// Event kinds, mirroring the EventSink methods.
const (
	EventStatus EventKind = iota
	EventDeviceDiscovered
	EventResolutionUpdated
	EventCompleted
)

// String returns the string representation of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStatus:
		return "status"
	case EventDeviceDiscovered:
		return "device_discovered"
	case EventResolutionUpdated:
		return "resolution_updated"
	case EventCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Event is one notification on the pipeline's event stream.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind    EventKind
	Message string
	Device  domain.HardwareDevice
	Index   int
	Outcome domain.Outcome
}

// EventSinkFunc adapts a function receiving Events to the EventSink interface.
type EventSinkFunc func(Event)

// OnStatus implements EventSink.
func (f EventSinkFunc) OnStatus(message string) {
	f(Event{Kind: EventStatus, Message: message})
}

// OnDeviceDiscovered implements EventSink.
func (f EventSinkFunc) OnDeviceDiscovered(device domain.HardwareDevice) {
	f(Event{Kind: EventDeviceDiscovered, Device: device})
}

// OnResolutionUpdated implements EventSink.
func (f EventSinkFunc) OnResolutionUpdated(index int, outcome domain.Outcome) {
	f(Event{Kind: EventResolutionUpdated, Index: index, Outcome: outcome})
}

// OnCompleted implements EventSink.
func (f EventSinkFunc) OnCompleted() {
	f(Event{Kind: EventCompleted})
}
