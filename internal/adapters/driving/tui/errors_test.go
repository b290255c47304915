package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrMissingScanner_Message(t *testing.T) {
	assert.Contains(t, ErrMissingScanner.Error(), "scanner")
}
