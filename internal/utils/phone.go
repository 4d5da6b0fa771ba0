package utils

import (
	"regexp"
	"strings"
)

// e164Pattern matches a normalized international phone number
var e164Pattern = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)

// NormalizePhoneNumber validates a phone number and normalizes it to E.164.
// Separators are stripped, a "00" international prefix becomes "+", and a
// national "0" prefix is replaced with the default country code. Returns the
// normalized number and whether the input was valid.
func NormalizePhoneNumber(phone, defaultCountryCode string) (string, bool) {
	// Clean the input by removing separators
	stripped := strings.ReplaceAll(phone, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "(", "")
	stripped = strings.ReplaceAll(stripped, ")", "")
	stripped = strings.ReplaceAll(stripped, ".", "")

	if stripped == "" {
		return "", false
	}

	switch {
	case strings.HasPrefix(stripped, "+"):
		// Already international
	case strings.HasPrefix(stripped, "00"):
		stripped = "+" + stripped[2:]
	case strings.HasPrefix(stripped, "0"):
		stripped = defaultCountryCode + stripped[1:]
	default:
		stripped = "+" + stripped
	}

	if !e164Pattern.MatchString(stripped) {
		return "", false
	}

	return stripped, true
}

// IsValidOTPCode reports whether code has the expected 6-digit shape
func IsValidOTPCode(code string) bool {
	if len(code) != 6 {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
