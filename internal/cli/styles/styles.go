// Package styles renders human-readable CLI output with lipgloss
package styles

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/cardport/internal/config/colors"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle   lipgloss.Style
	LabelStyle   lipgloss.Style // For field labels like "Board:", "Cards"
	ValueStyle   lipgloss.Style // For field values
	SubtleStyle  lipgloss.Style
	SectionStyle lipgloss.Style // For section headers like "Comments"

	// Status styles
	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	CounterStyle lipgloss.Style

	// enabled is false when output is not a terminal; helpers then
	// return their input untouched
	enabled bool
)

func init() {
	Init(*colors.Default(), false)
}

// Init initializes all CLI styles with the given palette
func Init(p colors.Palette, color bool) {
	p.ApplyDefaults()
	enabled = color

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.Title))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Normal))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Subtle))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.Success))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.Warning))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.Error))

	CounterStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Progress))
}

// Enabled reports whether styled output is on
func Enabled() bool {
	return enabled
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

func render(s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Title renders a heading
func Title(text string) string { return render(TitleStyle, text) }

// Label renders a field label
func Label(text string) string { return render(LabelStyle, text) }

// Value renders a field value
func Value(text string) string { return render(ValueStyle, text) }

// Subtle renders muted text
func Subtle(text string) string { return render(SubtleStyle, text) }

// Section renders a section header
func Section(text string) string { return render(SectionStyle, text) }

// Success renders a success marker
func Success(text string) string { return render(SuccessStyle, text) }

// Warning renders a warning marker
func Warning(text string) string { return render(WarningStyle, text) }

// Error renders an error marker
func Error(text string) string { return render(ErrorStyle, text) }

// Counter renders a progress counter
func Counter(text string) string { return render(CounterStyle, text) }

// Card renders content inside a bordered box. Without styling the content
// is returned as is.
func Card(content string) string { return render(CardStyle, content) }
