package services

import (
	"html"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// MaxQueryLength caps the search box contents kept in a session, in runes
const MaxQueryLength = 500

var plainTextPolicy = bluemonday.StrictPolicy()

// PlainText strips all markup from s and truncates it to max runes.
// The result is unescaped text; escaping is left to the renderer.
func PlainText(s string, max int) string {
	s = html.UnescapeString(plainTextPolicy.Sanitize(s))
	if max > 0 && utf8.RuneCountInString(s) > max {
		runes := []rune(s)
		s = string(runes[:max])
	}
	return s
}
