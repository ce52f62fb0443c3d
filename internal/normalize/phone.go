// Package normalize contains the pure format normalizers for candidate cell
// values. Every function is total: it returns a canonical value and an ok
// flag, never an error, and never guesses outside its documented range.
package normalize

import "strings"

// Phone canonicalizes an Indian mobile number to exactly ten digits.
// Non-digits are stripped, a leading country prefix "91" is dropped when the
// digit count exceeds ten, and the result is accepted only if it is exactly
// ten digits starting with 6-9.
func Phone(raw string) (string, bool) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if len(digits) > 10 && strings.HasPrefix(digits, "91") {
		digits = digits[2:]
	}

	if len(digits) != 10 {
		return "", false
	}
	if digits[0] < '6' || digits[0] > '9' {
		return "", false
	}
	return digits, true
}
