package utils

import (
	"regexp"
	"strings"
)

var (
	phonePattern   = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	aadhaarPattern = regexp.MustCompile(`^[0-9]{12}$`)
	nonDigit       = regexp.MustCompile(`[^0-9+]`)
)

// NormalizePhone strips separators from a phone number
func NormalizePhone(phone string) string {
	return nonDigit.ReplaceAllString(strings.TrimSpace(phone), "")
}

// IsValidPhone reports whether the normalized phone number is plausible
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(NormalizePhone(phone))
}

// NormalizeAadhaar strips separators from an identity document number
func NormalizeAadhaar(number string) string {
	return nonDigit.ReplaceAllString(strings.TrimSpace(number), "")
}

// IsValidAadhaar reports whether the identity document number is 12 digits
func IsValidAadhaar(number string) bool {
	return aadhaarPattern.MatchString(NormalizeAadhaar(number))
}

// IsValidEducation bounds the education free-text field
func IsValidEducation(education string) bool {
	n := len(strings.TrimSpace(education))
	return n >= 2 && n <= 500
}

// IsValidExperienceYears bounds the experience field
func IsValidExperienceYears(years int) bool {
	return years >= 0 && years <= 50
}

// SanitizeInput trims whitespace from free-text input
func SanitizeInput(s string) string {
	return strings.TrimSpace(s)
}
