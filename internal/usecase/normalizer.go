package usecase

import (
	"regexp"
	"strconv"
	"strings"
)

// Package-level compiled regex patterns for performance
var nonPriceCharsRegex = regexp.MustCompile(`[^\d.]`)

// ParseCommaSeparated splits a comma-separated string into a cleaned list.
// Each piece is trimmed of surrounding whitespace. Empty input yields an
// empty list. Never fails.
func ParseCommaSeparated(text string) []string {
	if text == "" {
		return []string{}
	}

	pieces := strings.Split(text, ",")
	items := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		items = append(items, strings.TrimSpace(piece))
	}

	return items
}

// ExtractPrice extracts a numeric price from a display string
// (e.g. "₹699" -> 699.0). Every rune that is not a digit or '.' is
// stripped before parsing. Unparseable remainders (empty string, multiple
// decimal points) degrade to 0.0 rather than failing - this is a
// best-effort, lossy extraction that must tolerate arbitrary currency
// symbols and locale formatting.
func ExtractPrice(priceStr string) float64 {
	cleaned := nonPriceCharsRegex.ReplaceAllString(priceStr, "")

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0.0
	}

	return value
}
