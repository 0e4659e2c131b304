package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/cardport/internal/config/colors"
)

func TestHelpers_PlainWhenDisabled(t *testing.T) {
	Init(*colors.Default(), false)
	t.Cleanup(func() { Init(*colors.Default(), false) })

	assert.False(t, Enabled())
	assert.Equal(t, "Cards", Label("Cards"))
	assert.Equal(t, "body", Card("body"))
	assert.Equal(t, "3/4", Counter("3/4"))
}

func TestHelpers_StyledWhenEnabled(t *testing.T) {
	Init(colors.Palette{Preset: "monochrome"}, true)
	t.Cleanup(func() { Init(*colors.Default(), false) })

	assert.True(t, Enabled())
	assert.Contains(t, Title("Report"), "Report")
	assert.Contains(t, Card("body"), "body")
}
