package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults_UsesPreset(t *testing.T) {
	p := &Palette{Preset: "monochrome", Accent: "#123456"}
	p.ApplyDefaults()

	assert.Equal(t, "#123456", p.Accent, "custom values win")
	assert.Equal(t, Monochrome().Title, p.Title)
	assert.Equal(t, Monochrome().Progress, p.Progress)
}

func TestApplyDefaults_EmptyPreset(t *testing.T) {
	p := &Palette{}
	p.ApplyDefaults()
	assert.Equal(t, *Default(), *p)
}

func TestGetPreset_Unknown(t *testing.T) {
	assert.Equal(t, Default(), GetPreset("neon"))
}
