package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDuration converts a human-entered duration string into fractional
// hours. Accepted grammars, tried in order:
//
//	"1.5"   plain decimal number of hours
//	"1:30"  hours and minutes separated by ':'
//	"1h30"  hours and minutes separated by 'h'
//	"1:"    empty minutes default to 0 (likewise "1h")
//
// The parser is locale-invariant: '.' is always the decimal point and no
// grouping separators are accepted. Surrounding whitespace is trimmed.
// Anything else fails with ErrInvalidDuration.
func ParseDuration(text string) (float64, error) {
	s := strings.TrimSpace(text)

	if hours, err := strconv.ParseFloat(s, 64); err == nil {
		return hours, nil
	}

	var sep string
	switch {
	case strings.Contains(s, ":"):
		sep = ":"
	case strings.Contains(s, "h"):
		sep = "h"
	default:
		return 0, fmt.Errorf("parse duration %q: %w", text, ErrInvalidDuration)
	}

	parts := strings.Split(s, sep)
	if len(parts) != 2 {
		// More than one separator ("1:30:00") is not a duration.
		return 0, fmt.Errorf("parse duration %q: %w", text, ErrInvalidDuration)
	}

	hours, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", text, ErrInvalidDuration)
	}

	minutes := 0.0
	if parts[1] != "" {
		minutes, err = strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return 0, fmt.Errorf("parse duration %q: %w", text, ErrInvalidDuration)
		}
	}

	return hours + minutes/60, nil
}
