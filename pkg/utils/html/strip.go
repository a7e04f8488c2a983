// ABOUTME: HTML utilities for reducing markup to plain text
// ABOUTME: Used to clean feed descriptions before they reach API consumers

package html

import (
	stdhtml "html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var stripPolicy = bluemonday.StrictPolicy()

// StripHTML removes every HTML tag from a string, decodes entities, and
// collapses runs of whitespace into single spaces.
func StripHTML(input string) string {
	if input == "" {
		return ""
	}

	text := stripPolicy.Sanitize(input)

	// Sanitize re-escapes entities; decode them for display text.
	text = stdhtml.UnescapeString(text)

	return strings.Join(strings.Fields(text), " ")
}
