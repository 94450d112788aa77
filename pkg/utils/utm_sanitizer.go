package utils

import "strings"

// SanitizeUTMValue trims a raw tag value and optionally lowercases it.
// Internal whitespace and characters are left untouched.
func SanitizeUTMValue(raw string, lowercase bool) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if lowercase {
		return strings.ToLower(trimmed)
	}
	return trimmed
}
