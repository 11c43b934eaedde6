// Package text normalizes handwritten recipe names.
package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var separators = strings.NewReplacer("-", " ", "_", " ")

// CleanName turns a scribbled recipe name into "Title Case Words".
// Hyphens and underscores become spaces, anything other than letters and
// whitespace is dropped, runs of whitespace collapse to one space and each
// word is capitalized. It reports false when no letters remain.
func CleanName(raw string) (string, bool) {
	s := separators.Replace(raw)

	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)

	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return "", false
	}

	// Title casers keep state and are not safe for concurrent use.
	return cases.Title(language.Und).String(s), true
}
