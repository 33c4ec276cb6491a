package engine

import "strings"

// SanitizeNumericText normalizes raw free-text input into a plain numeric
// string. Every character that is not an ASCII digit or a decimal point is
// stripped, only the first decimal point survives (digits that followed
// later points are concatenated onto the fraction), and a result that
// starts with a decimal point gains a leading zero.
//
// The function is purely textual and idempotent; it never parses the
// result. Callers decide whether the normalized string is an acceptable
// number.
func SanitizeNumericText(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	seenPoint := false
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenPoint:
			seenPoint = true
			b.WriteRune(r)
		}
	}

	s := b.String()
	if strings.HasPrefix(s, ".") {
		return "0" + s
	}
	return s
}
