package tui

import "errors"

// ErrMissingScanner is returned when the scanner is not provided.
var ErrMissingScanner = errors.New("tui: scanner is required")
