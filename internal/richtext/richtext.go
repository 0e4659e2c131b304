// Package richtext cleans imported HTML bodies before they are stored
package richtext

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// ugc allows the formatting a rich text editor produces
	ugc = bluemonday.UGCPolicy()
	// strict strips every tag, for terminal output
	strict = bluemonday.StrictPolicy()
)

// Sanitize removes scripts, event handlers and other unsafe markup while
// keeping ordinary formatting, links and images
func Sanitize(body string) string {
	return strings.TrimSpace(ugc.Sanitize(body))
}

// PlainText renders rich text as plain text with collapsed whitespace
func PlainText(body string) string {
	// Keep paragraph and line breaks from turning into run-on words
	r := strings.NewReplacer("<br>", "\n", "<br/>", "\n", "<br />", "\n", "</p>", "</p>\n", "</div>", "</div>\n", "</li>", "</li>\n")
	text := html.UnescapeString(strict.Sanitize(r.Replace(body)))

	lines := strings.Split(text, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
