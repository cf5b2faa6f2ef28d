package utils

import (
	"regexp"
	"strings"
)

var (
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
	gstinRegex = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
)

// IsValidPhone reports whether s is exactly 10 digits.
func IsValidPhone(s string) bool {
	return phoneRegex.MatchString(s)
}

// IsValidGSTIN reports whether s matches the 15-character GSTIN pattern.
func IsValidGSTIN(s string) bool {
	return gstinRegex.MatchString(s)
}

// EscapeLikePattern escapes LIKE/ILIKE metacharacters in user input so the
// input is matched literally inside a pattern. The caller must pass ESCAPE '\'
// semantics (Postgres default).
func EscapeLikePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
