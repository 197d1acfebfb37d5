package core

import "strings"

// NormalizeQuery canonicalizes raw query text for cache keys and
// provider calls: surrounding whitespace is trimmed, internal runs of
// whitespace collapse to a single space, and the result is case-folded.
// An all-whitespace query normalizes to the empty string.
func NormalizeQuery(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(strings.Join(fields, " "))
}
