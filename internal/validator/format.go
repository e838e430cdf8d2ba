package validator

import (
	"regexp"
	"strings"
	"unicode"
)

// mobilePattern accepts an Egyptian mobile number with an optional +20,
// 20, 0020 or 0 prefix.
var mobilePattern = regexp.MustCompile(`^(?:\+?20|0020|0)?1[0125]\d{8}$`)

// NormalizeMobile strips whitespace, including Unicode spaces, and hyphens
// from a phone number.
func NormalizeMobile(mobile string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, mobile)
}

// IsValidMobile reports whether mobile is an acceptable mobile number.
func IsValidMobile(mobile string) bool {
	m := NormalizeMobile(mobile)
	return m != "" && mobilePattern.MatchString(m)
}

func required(v string) bool {
	return strings.TrimSpace(v) != ""
}
