package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrUnsupportedPlatform indicates the device inventory cannot run on this OS.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrInvalidTransition indicates an attempt to move an outcome out of a
	// terminal state.
	ErrInvalidTransition = errors.New("invalid outcome transition")

	// Scan Errors.

	// ErrAuthentication indicates the credential was rejected by the
	// knowledge service. It halts a scan before any device query.
	ErrAuthentication = errors.New("authentication failed")

	// ErrEnumeration indicates the device inventory could not be queried.
	ErrEnumeration = errors.New("device enumeration failed")

	// ErrQuery indicates a single device query failed for reasons other
	// than credentials. It halts the remainder of a scan.
	ErrQuery = errors.New("query failed")

	// ErrAuthInvalid is returned by LLM adapters when the provider rejects
	// the API key (HTTP 401/403).
	ErrAuthInvalid = errors.New("authentication invalid")
)
