package desktop

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandFor(t *testing.T) {
	const url = "https://www.nvidia.com/drivers"

	tests := []struct {
		goos string
		want []string
	}{
		{"darwin", []string{"open", url}},
		{"linux", []string{"xdg-open", url}},
		{"windows", []string{"rundll32", "url.dll,FileProtocolHandler", url}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			cmd, err := commandFor(tt.goos, url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cmd.Args)
		})
	}
}

func TestCommandFor_Unsupported(t *testing.T) {
	_, err := commandFor("plan9", "https://example.com")
	assert.ErrorContains(t, err, "unsupported platform")
}

func TestBrowser_Open_PropagatesCommandError(t *testing.T) {
	b := &Browser{command: func(string) (*exec.Cmd, error) {
		return nil, assert.AnError
	}}

	assert.ErrorIs(t, b.Open("https://example.com"), assert.AnError)
}

func TestBrowser_Open_StartsCommand(t *testing.T) {
	path, err := exec.LookPath("true")
	if err != nil {
		t.Skip("true not available")
	}
	var got string
	b := &Browser{command: func(url string) (*exec.Cmd, error) {
		got = url
		return exec.Command(path), nil
	}}

	require.NoError(t, b.Open("https://example.com"))
	assert.Equal(t, "https://example.com", got)
}
