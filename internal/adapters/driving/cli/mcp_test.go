package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServeCmd_PortFlag(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")

	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestMCPServeCmd_HelpListsTools(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "", "mcp", "serve", "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "scan_drivers")
	assert.Contains(t, out, "extract_identifiers")
}
