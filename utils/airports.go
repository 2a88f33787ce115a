// utils/airports.go
package utils

import "strings"

// IsAirportCodeShaped reports whether the input looks like a bare
// 3-letter airport code (exactly three ASCII letters, any case).
// Whether the code actually exists is the catalog's call.
func IsAirportCodeShaped(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		c := s[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}

// CanonicalAirportCode upper-cases and trims a code for catalog lookups.
func CanonicalAirportCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
