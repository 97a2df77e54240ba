package config

import (
	"strings"
	"unicode/utf8"

	apperrors "csvcli/internal/errors"
)

// ParseBool parses a boolean-like string. It accepts yes/true/t/y/1
// and no/false/f/n/0, case-insensitively. Anything else is a
// configuration error.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "t", "y", "1":
		return true, nil
	case "no", "false", "f", "n", "0":
		return false, nil
	default:
		return false, apperrors.Configuration("boolean value expected, got %q", s)
	}
}

// ParseDelimiter converts a delimiter flag value to the single rune
// the CSV codec expects.
func ParseDelimiter(s string) (rune, error) {
	if s == "" {
		return 0, apperrors.Configuration("delimiter must not be empty")
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r == utf8.RuneError {
		return 0, apperrors.Configuration("delimiter must be a single character, got %q", s)
	}
	return r, nil
}

// ParseColumns splits a comma-separated column list. The list is not
// trimmed per entry: column names are matched exactly against the
// header.
func ParseColumns(s string) []string {
	return strings.Split(strings.TrimSpace(s), ",")
}
