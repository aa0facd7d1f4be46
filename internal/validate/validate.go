package validate

import (
	"regexp"
	"strings"
)

var (
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reQuery = regexp.MustCompile(`^[\p{L}0-9 _'\-]{1,50}$`)
)

// Required trims s and reports whether anything is left.
func Required(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

// Price accepts a present, non-zero amount. Zero counts as missing, like any
// other falsy field.
func Price(p *float64) (float64, bool) {
	if p == nil || *p == 0 {
		return 0, false
	}
	return *p, true
}

// Email trims s. Format is left to the client; only presence is checked.
func Email(s string) (string, bool) {
	return Required(s)
}

// ID validates a store-assigned resource identifier.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Query validates a free-text search term: letters, digits, spaces and a few
// separators, cut to 50 bytes.
func Query(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) > 50 {
		s = strings.ToValidUTF8(s[:50], "")
	}
	return s, reQuery.MatchString(s)
}
