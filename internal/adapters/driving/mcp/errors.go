// Package mcp provides an MCP (Model Context Protocol) server adapter for driverfinder.
// It lets AI assistants scan the local hardware for official driver links.
package mcp

import "errors"

// ErrMissingScanner is returned when the scanner is not provided.
var ErrMissingScanner = errors.New("mcp: scanner is required")

// errMissingCredential is returned when neither the tool call nor the
// server carries an API key.
var errMissingCredential = errors.New("api_key is required (no default credential configured)")
