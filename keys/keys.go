// Package keys normalizes object keys to canonical lowercase underscore
// form, so that camelCase, PascalCase, kebab-case, space separated, and
// already-snake keys all address the same field.
package keys

import (
	"strings"
	"unicode"
)

// Normalize maps an arbitrary source key to its canonical form. It is
// total and idempotent: Normalize(Normalize(k)) == Normalize(k).
//
// Word boundaries are detected from three signals:
//
//   - a transition from a lowercase letter or digit to an uppercase letter
//   - an explicit separator: hyphen, space, or underscore
//   - an uppercase run followed by a lowercase letter, which starts a new
//     word at the last uppercase rune ("HTTPServer" -> "http_server")
//
// The result has no leading, trailing, or repeated underscores.
func Normalize(key string) string {
	rs := []rune(key)
	var b strings.Builder
	b.Grow(len(key) + 4)

	sep := func() {
		s := b.String()
		if len(s) > 0 && s[len(s)-1] != '_' {
			b.WriteByte('_')
		}
	}

	for i, r := range rs {
		switch {
		case r == '-' || r == ' ' || r == '_':
			sep()
		case unicode.IsUpper(r):
			if i > 0 {
				prev := rs[i-1]
				next := rune(0)
				if i+1 < len(rs) {
					next = rs[i+1]
				}
				if unicode.IsLower(prev) || unicode.IsDigit(prev) {
					sep()
				} else if unicode.IsUpper(prev) && unicode.IsLower(next) {
					sep()
				}
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
