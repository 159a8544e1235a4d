package utils

import (
	"strings"
	"unicode"
)

// NormalizeNationalID strips punctuation and whitespace from a national ID.
// Letters and symbols are kept so that the caller's digit check still rejects them.
func NormalizeNationalID(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
}

// ContainsFold reports whether substr is within s, ignoring case
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
