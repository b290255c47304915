package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkOpen_AsksBeforeOpening(t *testing.T) {
	ts := setupTestServices(t)

	out, err := execute(t, "y\n", "link", "open", "https://www.intel.com/download")

	require.NoError(t, err)
	assert.Contains(t, out, "official website")
	assert.Contains(t, out, "Opened in browser")
	assert.Equal(t, []string{"https://www.intel.com/download"}, ts.actions.opened)
}

func TestLinkOpen_DeclinedDoesNothing(t *testing.T) {
	ts := setupTestServices(t)

	out, err := execute(t, "n\n", "link", "open", "https://www.intel.com/download")

	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled")
	assert.Empty(t, ts.actions.opened)
}

func TestLinkOpen_YesSkipsConfirmation(t *testing.T) {
	ts := setupTestServices(t)

	out, err := execute(t, "", "link", "open", "--yes", "https://www.amd.com/support")

	require.NoError(t, err)
	assert.NotContains(t, out, "official website")
	assert.Equal(t, []string{"https://www.amd.com/support"}, ts.actions.opened)
}

func TestLinkOpen_RejectsNonHTTP(t *testing.T) {
	ts := setupTestServices(t)

	_, err := execute(t, "y\n", "link", "open", "file:///etc/passwd")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "only http and https")
	assert.Empty(t, ts.actions.opened)
}

func TestLinkOpen_BrowserError(t *testing.T) {
	ts := setupTestServices(t)
	ts.actions.openErr = errors.New("no browser")

	_, err := execute(t, "", "link", "open", "-y", "https://example.com")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no browser")
}

func TestLinkCopy(t *testing.T) {
	ts := setupTestServices(t)

	out, err := execute(t, "", "link", "copy", "https://example.com/driver")

	require.NoError(t, err)
	assert.Contains(t, out, "Copied to clipboard")
	assert.Equal(t, []string{"https://example.com/driver"}, ts.actions.copied)
}
