// Package crn normalizes and validates UK company registration numbers so
// the portfolio stores exactly one canonical form per company.
package crn

import (
	"fmt"
	"strings"
)

// Normalize returns the canonical form of a CRN: uppercase, no interior
// spaces, and all-digit forms left-padded with zeros to eight characters
// (Companies House drops leading zeros in some listings).
func Normalize(s string) string {
	s = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	if s != "" && isDigits(s) && len(s) < 8 {
		s = strings.Repeat("0", 8-len(s)) + s
	}
	return s
}

// Validate checks an already-normalized CRN: eight digits, or a two-letter
// jurisdiction prefix followed by six digits (e.g. SC123456, NI012345).
func Validate(s string) error {
	if len(s) != 8 {
		return fmt.Errorf("invalid CRN %q: want 8 characters", s)
	}
	if isDigits(s) {
		return nil
	}
	if isUpperAlpha(s[:2]) && isDigits(s[2:]) {
		return nil
	}
	return fmt.Errorf("invalid CRN %q: want 8 digits or 2 letters + 6 digits", s)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isUpperAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
