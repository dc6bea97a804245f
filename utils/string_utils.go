package utils

import (
	"fmt"
	"html/template"
	"strings"
)

// CoverURL returns the Open Library medium cover image for coverID.
func CoverURL(coverID string) string {
	return fmt.Sprintf(CoverURLTemplate, coverID)
}

// Paragraphs escapes s and turns it into paragraph markup: every line break
// closes one paragraph and opens the next, and the whole text is wrapped in a
// single <p></p> pair.
func Paragraphs(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return "<p>" + strings.ReplaceAll(template.HTMLEscapeString(s), "\n", "</p><p>") + "</p>"
}
