package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeConstructors(t *testing.T) {
	assert.Equal(t, OutcomePending, Pending().State)
	assert.False(t, Pending().IsTerminal())

	found := Found("https://www.nvidia.com/drivers")
	assert.Equal(t, OutcomeFound, found.State)
	assert.Equal(t, "https://www.nvidia.com/drivers", found.URL)
	assert.True(t, found.IsTerminal())

	assert.Equal(t, OutcomeNotFound, NotFound().State)

	failed := Failed(ErrQuery)
	assert.True(t, failed.IsFailed())
	assert.ErrorIs(t, failed.Err, ErrQuery)
}

func TestOutcomeState_String(t *testing.T) {
	assert.Equal(t, "pending", OutcomePending.String())
	assert.Equal(t, "found", OutcomeFound.String())
	assert.Equal(t, "not_found", OutcomeNotFound.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
	assert.Equal(t, "unknown", OutcomeState(42).String())
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "https://intel.com", Found("https://intel.com").String())
	assert.Equal(t, "No official link found", NotFound().String())
	assert.Equal(t, "ERROR", Failed(ErrQuery).String())
	assert.Equal(t, "Searching for driver...", Pending().String())
}
