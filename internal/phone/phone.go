// Package phone contains the phone number helpers shared by the store,
// the device address book matching and the CLI output.
package phone

import (
	"strings"
	"unicode"
)

// Normalize strips everything except digits and a leading '+'. The
// normalized form is what gets compared against the device address
// book.
func Normalize(phoneNumber string) string {
	var b strings.Builder
	for i, r := range phoneNumber {
		if unicode.IsDigit(r) || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Equal reports whether two numbers match after normalization.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// Format renders a number for display. Turkish mobile numbers and bare
// 10-digit numbers get grouped; anything else passes through as typed.
func Format(phoneNumber string) string {
	n := Normalize(phoneNumber)

	switch {
	case strings.HasPrefix(n, "+90") && len(n) == 13:
		// +90 5XX XXX XX XX
		return strings.Join([]string{n[:3], n[3:6], n[6:9], n[9:11], n[11:13]}, " ")
	case len(n) == 10:
		// XXX XXX XX XX
		return strings.Join([]string{n[:3], n[3:6], n[6:8], n[8:10]}, " ")
	default:
		return phoneNumber
	}
}

// CountryCode extracts the country prefix of an international number,
// or "" when the number has none.
func CountryCode(phoneNumber string) string {
	n := Normalize(phoneNumber)

	for _, code := range []string{"+90", "+1", "+44", "+49"} {
		if strings.HasPrefix(n, code) {
			return code
		}
	}
	if strings.HasPrefix(n, "+") && len(n) >= 3 {
		return n[:3]
	}
	return ""
}
