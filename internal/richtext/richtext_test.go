package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		contains string
		excludes string
	}{
		{"keeps formatting", "<p>Hello <strong>world</strong></p>", "<strong>world</strong>", ""},
		{"drops scripts", `<p>hi</p><script>alert(1)</script>`, "<p>hi</p>", "script"},
		{"drops event handlers", `<a href="https://example.com" onclick="steal()">link</a>`, "https://example.com", "onclick"},
		{"drops javascript urls", `<a href="javascript:alert(1)">x</a>`, "x", "javascript:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.in)
			assert.Contains(t, got, tt.contains)
			if tt.excludes != "" {
				assert.NotContains(t, got, tt.excludes)
			}
		})
	}
}

func TestSanitize_Empty(t *testing.T) {
	assert.Equal(t, "", Sanitize(""))
	assert.Equal(t, "", Sanitize("   "))
}

func TestPlainText(t *testing.T) {
	got := PlainText("<p>First   line</p><p>Second &amp; <em>last</em></p>")
	assert.Equal(t, "First line\nSecond & last", got)
}

func TestPlainText_LineBreaks(t *testing.T) {
	assert.Equal(t, "a\nb", PlainText("a<br>b"))
}
