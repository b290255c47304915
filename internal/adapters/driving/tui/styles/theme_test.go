package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/driverfinder/internal/core/domain"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	for name, c := range map[string]lipgloss.AdaptiveColor{
		"accent":    theme.Accent,
		"found":     theme.Found,
		"not found": theme.NotFound,
		"failed":    theme.Failed,
		"border":    theme.Border,
	} {
		assert.NotEmpty(t, c.Light, name)
		assert.NotEmpty(t, c.Dark, name)
	}
}

func TestDefaultTheme_OutcomeColoursAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	seen := make(map[lipgloss.AdaptiveColor]bool)
	for _, c := range []lipgloss.AdaptiveColor{theme.Found, theme.NotFound, theme.Failed, theme.Muted} {
		assert.False(t, seen[c], "duplicate colour: %v", c)
		seen[c] = true
	}
}

func TestNewStyles_NilTheme(t *testing.T) {
	styles := NewStyles(nil)

	require.NotNil(t, styles)
	assert.NotNil(t, styles.Theme())
}

func TestStyles_AllStylesInitialised(t *testing.T) {
	styles := DefaultStyles()

	assert.NotEqual(t, lipgloss.Style{}, styles.Title)
	assert.NotEqual(t, lipgloss.Style{}, styles.StatusBar)
	assert.NotEqual(t, lipgloss.Style{}, styles.Link)
	assert.NotEqual(t, lipgloss.Style{}, styles.Dialog)
}

func TestStyles_Outcome(t *testing.T) {
	s := DefaultStyles()

	assert.Equal(t, s.Link.Render("x"), s.Outcome(domain.OutcomeFound).Render("x"))
	assert.Equal(t, s.Warning.Render("x"), s.Outcome(domain.OutcomeNotFound).Render("x"))
	assert.Equal(t, s.Error.Render("x"), s.Outcome(domain.OutcomeFailed).Render("x"))
	assert.Equal(t, s.Muted.Render("x"), s.Outcome(domain.OutcomePending).Render("x"))
}
