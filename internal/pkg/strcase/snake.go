// Package strcase converts Go identifiers to wire-style names.
package strcase

import (
	"strings"
	"unicode"
)

// ToLowerSnake converts an identifier to snake_case, keeping initialisms
// together: "RemoteIP" -> "remote_ip", "HTTPServer" -> "http_server".
func ToLowerSnake(s string) string {
	return strings.Join(words(s), "_")
}

// words splits s at case changes, digits-to-upper transitions, and the last
// upper-case letter of an initialism that is followed by a lower-case one.
// Existing separators ('_', '-', ' ') also split.
func words(s string) []string {
	var (
		out []string
		cur []rune
	)
	flush := func() {
		if len(cur) > 0 {
			out = append(out, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}

	rs := []rune(s)
	for i, r := range rs {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			flush()
			continue
		}

		if i > 0 && unicode.IsUpper(r) {
			prev := rs[i-1]
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()

	return out
}
