// Package chat implements the answer-resolution pipeline: text
// normalization, rule matching, fuzzy FAQ matching, domain classification,
// and the layered fallback chain tying them together.
package chat

import (
	"regexp"
	"strings"
)

var (
	parenPattern    = regexp.MustCompile(`\([^)]*\)`)
	nonAlnumPattern = regexp.MustCompile(`[^a-z0-9\s]`)
	spacePattern    = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes text for comparison: lower-case, drop parenthesized
// substrings, map everything outside [a-z0-9\s] to a space, collapse runs of
// whitespace, trim. Idempotent; whitespace-only input becomes "".
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = parenPattern.ReplaceAllString(s, "")
	s = nonAlnumPattern.ReplaceAllString(s, " ")
	s = spacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
