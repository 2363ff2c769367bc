// Package slug turns display titles and names into stable identifiers.
//
// The slug is the only join key between the Sessionize payload and the
// Hoverboard snapshots, so the transformation must stay byte-stable across
// syncs for an unchanged input string. Renaming a title on the provider side
// orphans the previous internal record; that is accepted.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripper decomposes accented letters (NFD) and then removes every rune
// outside [A-Za-z0-9_-], which drops the combining marks along with
// punctuation.
var stripper = transform.Chain(norm.NFD, runes.Remove(runes.Predicate(isDisallowed)))

// Make returns the lowercase, accent-stripped identifier for a display
// string. Whitespace runs become underscores, one per whitespace rune.
// Empty input yields empty output.
func Make(s string) string {
	noWhitespace := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, s)

	stripped, _, err := transform.String(stripper, noWhitespace)
	if err != nil {
		// norm.NFD and runes.Remove do not produce errors; keep the
		// unstripped form rather than panic if that ever changes.
		stripped = noWhitespace
	}

	return strings.ToLower(stripped)
}

func isDisallowed(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return false
	case r >= 'A' && r <= 'Z':
		return false
	case r >= '0' && r <= '9':
		return false
	case r == '_' || r == '-':
		return false
	}
	return true
}
