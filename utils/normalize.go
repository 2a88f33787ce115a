// utils/normalize.go
package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// German letters expand to digraphs rather than plain accent stripping,
// so "münchen" and "muenchen" normalize to the same key.
var umlautReplacer = strings.NewReplacer(
	"ä", "ae",
	"ö", "oe",
	"ü", "ue",
	"ß", "ss",
)

// stripMarks decomposes to NFD, drops combining marks (é→e, ç→c, ñ→n),
// and recomposes.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var titleCaser = cases.Title(language.Und)

// Normalize folds a raw location string into the canonical cache/lookup
// key: lower-case, diacritics folded to base Latin letters, punctuation
// removed, whitespace collapsed to single spaces, trimmed.
// Idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = umlautReplacer.Replace(s)
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		case unicode.IsSpace(r):
			pendingSpace = true
		}
	}
	return b.String()
}

// TitleCase renders a user-supplied location for display
// ("new york" → "New York").
func TitleCase(input string) string {
	return titleCaser.String(strings.TrimSpace(input))
}
