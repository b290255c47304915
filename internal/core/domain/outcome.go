package domain

// OutcomeState tags the variant held by an Outcome.
type OutcomeState int

// Outcome states. Pending is the zero value.
const (
	// OutcomePending means the device has not been queried yet.
	OutcomePending OutcomeState = iota

	// OutcomeFound means the service returned a link.
	OutcomeFound

	// OutcomeNotFound means the service signalled no safe official link exists.
	OutcomeNotFound

	// OutcomeFailed means the query itself failed.
	OutcomeFailed
)

// String returns the string representation of the state.
func (s OutcomeState) String() string {
	switch s {
	case OutcomePending:
		return "pending"
	case OutcomeFound:
		return "found"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of resolving one device's driver link.
type Outcome struct {
	// State identifies the variant.
	State OutcomeState

	// URL is set when State is OutcomeFound.
	URL string

	// Err is set when State is OutcomeFailed. It wraps ErrAuthentication
	// or ErrQuery.
	Err error
}

// Pending returns the initial outcome.
func Pending() Outcome { return Outcome{State: OutcomePending} }

// Found returns a Found outcome carrying url.
func Found(url string) Outcome { return Outcome{State: OutcomeFound, URL: url} }

// NotFound returns a NotFound outcome.
func NotFound() Outcome { return Outcome{State: OutcomeNotFound} }

// Failed returns a Failed outcome carrying err.
func Failed(err error) Outcome { return Outcome{State: OutcomeFailed, Err: err} }

// IsTerminal returns true once the outcome has left Pending.
func (o Outcome) IsTerminal() bool {
	return o.State != OutcomePending
}

// IsFailed returns true if the query failed.
func (o Outcome) IsFailed() bool {
	return o.State == OutcomeFailed
}

// String returns a short human-readable rendering.
func (o Outcome) String() string {
	switch o.State {
	case OutcomeFound:
		return o.URL
	case OutcomeNotFound:
		return "No official link found"
	case OutcomeFailed:
		return "ERROR"
	default:
		return "Searching for driver..."
	}
}
