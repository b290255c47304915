package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("enter", km.Scan))
	assert.True(t, Matches("enter", km.Open))
	assert.True(t, Matches("o", km.Open))
	assert.True(t, Matches("c", km.Copy))
	assert.True(t, Matches("y", km.Confirm))
	assert.True(t, Matches("n", km.Deny))
	assert.True(t, Matches("esc", km.Deny))
	assert.True(t, Matches("tab", km.Focus))
	assert.True(t, Matches("ctrl+c", km.Quit))
}

func TestMatches_NoMatch(t *testing.T) {
	km := DefaultKeyMap()

	assert.False(t, Matches("x", km.Copy))
	assert.False(t, Matches("", km.Open))
}

func TestHelpSets(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.InputHelp(), 3)
	assert.Len(t, km.TableHelp(), 5)
	assert.Len(t, km.DialogHelp(), 2)

	for _, b := range km.TableHelp() {
		assert.NotEmpty(t, b.Help().Key)
		assert.NotEmpty(t, b.Help().Desc)
	}
}
