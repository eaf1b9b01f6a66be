package utils

import (
	"strconv"
	"strings"
)

// ParseFloatOrZero converts a free-form numeric string to float64.
// Empty input and conversion failures yield 0 - ingest-side fields like
// study hours and focus level are tolerated, never rejected.
func ParseFloatOrZero(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
