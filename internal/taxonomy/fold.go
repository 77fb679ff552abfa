package taxonomy

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases s, strips diacritics and turns every separator into a single
// space. '+' and '#' survive so that "C++" and "C#" stay distinct from "C".
func Fold(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(t, s); err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' {
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(r)
			space = false
			continue
		}
		space = true
	}

	return b.String()
}

// HasPhrase reports whether the folded phrase occurs in the folded text on
// word boundaries. Both arguments must already be folded.
func HasPhrase(foldedText, foldedPhrase string) bool {
	if foldedText == "" || foldedPhrase == "" {
		return false
	}
	return strings.Contains(" "+foldedText+" ", " "+foldedPhrase+" ")
}
