package inventory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePCIIDs = `#
#	List of PCI ID's
#
10de  NVIDIA Corporation
	1e04  TU102 [GeForce RTX 2080 Ti]
		1462 12a3  GeForce RTX 2080 Ti GAMING X TRIO
8086  Intel Corporation
	15bc  Ethernet Connection (7) I219-V
C 03  Display controller
	00  VGA compatible controller
`

func TestParsePCIIDs(t *testing.T) {
	names, err := parsePCIIDs(strings.NewReader(samplePCIIDs))
	require.NoError(t, err)

	assert.Equal(t, "NVIDIA Corporation TU102 [GeForce RTX 2080 Ti]", names.Name("10DE", "1E04"))
	assert.Equal(t, "Intel Corporation Ethernet Connection (7) I219-V", names.Name("8086", "15bc"))
	assert.Empty(t, names.Name("10de", "ffff"))
	assert.Empty(t, names.Name("1234", "5678"))
}

func TestParsePCIIDs_StopsAtClassSection(t *testing.T) {
	names, err := parsePCIIDs(strings.NewReader(samplePCIIDs))
	require.NoError(t, err)

	_, ok := names["03"]
	assert.False(t, ok)
	_, ok = names["8086:00"]
	assert.False(t, ok)
}

func TestSplitIDLine(t *testing.T) {
	id, name, ok := splitIDLine("10DE  NVIDIA Corporation")
	assert.True(t, ok)
	assert.Equal(t, "10de", id)
	assert.Equal(t, "NVIDIA Corporation", name)

	_, _, ok = splitIDLine("short")
	assert.False(t, ok)
}
