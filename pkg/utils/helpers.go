package utils

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCount renders an integer with comma grouping (1234567 → "1,234,567").
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatNumber returns a human-readable string for large values: millions
// get an "M" suffix, thousands a "K" suffix, smaller values comma grouping.
func FormatNumber(n float64) string {
	switch {
	case n >= 1_000_000 || n <= -1_000_000:
		return fmt.Sprintf("%.1f M", n/1_000_000)
	case n >= 1_000 || n <= -1_000:
		return fmt.Sprintf("%.1f K", n/1_000)
	default:
		return printer.Sprintf("%d", int(n))
	}
}

// ParseIntDefault parses s, falling back when empty or malformed.
func ParseIntDefault(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return fallback
}
