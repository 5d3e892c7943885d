package types

import "regexp"

var (
	nonDigitPattern = regexp.MustCompile(`[^0-9]`)
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// NormalizeCPF strips every non-digit character from raw.
func NormalizeCPF(raw string) string {
	return nonDigitPattern.ReplaceAllString(raw, "")
}

// IsValidCPF reports whether raw normalizes to exactly 11 digits.
// This is a structural check only; verification digits are not computed.
func IsValidCPF(raw string) bool {
	return len(NormalizeCPF(raw)) == 11
}

// IsValidEmail reports whether raw matches the basic local@domain.tld
// shape, with a final label of at least two letters.
func IsValidEmail(raw string) bool {
	return emailPattern.MatchString(raw)
}
