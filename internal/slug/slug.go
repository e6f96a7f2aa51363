// Package slug derives URL-safe identifiers from article titles.
package slug

import (
	"strings"

	"github.com/google/uuid"
)

// accentFold maps the accented Latin letters we accept in titles to their
// ASCII base letter. Anything not covered here and outside [a-z0-9\s-]
// is dropped.
var accentFold = map[rune]rune{
	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a',
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u',
	'ç': 'c',
}

// Generate produces a lowercase hyphenated slug from a title.
// Deterministic and pure. Returns the empty string when the title contains
// no usable characters; callers must treat an empty slug as invalid input.
func Generate(title string) string {
	lowered := strings.ToLower(title)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if folded, ok := accentFold[r]; ok {
			r = folded
		}
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '\r', r == '\f', r == '\v':
			b.WriteByte(' ')
		case r == '-':
			b.WriteByte('-')
		}
	}

	// Collapse separator runs into single hyphens.
	parts := strings.FieldsFunc(b.String(), func(r rune) bool {
		return r == ' ' || r == '-'
	})
	return strings.Join(parts, "-")
}

// WithSuffix appends a short random suffix to disambiguate a colliding slug.
// Best-effort: the suffixed slug is not re-checked for uniqueness.
func WithSuffix(s string) string {
	return s + "-" + uuid.NewString()[:8]
}
