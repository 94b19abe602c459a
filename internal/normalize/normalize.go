// Package normalize converts raw extracted fragments into clean values.
package normalize

import (
	"strconv"
	"strings"
)

// Number parses a German-formatted numeric string ("." thousands separator,
// "," decimal separator), e.g. "1.234,56" -> 1234.56. Returns nil for empty
// or unparseable input; it never propagates a malformed string.
func Number(raw string) *float64 {
	if raw == "" {
		return nil
	}
	cleaned := strings.ReplaceAll(raw, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &value
}

// Text trims surrounding whitespace from an extracted text fragment.
func Text(raw string) string {
	return strings.TrimSpace(raw)
}
