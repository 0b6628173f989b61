package domain

import "strings"

// NormalizeWord trims surrounding whitespace. Case is preserved: exact
// matching on words is case-sensitive.
func NormalizeWord(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeTagName trims and collapses inner whitespace.
func NormalizeTagName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
