package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// currencyMarks are stripped from a price string before parsing. Catalog
// prices are written for display ("1 550 ₽", "800 руб."), the numeric value
// is derived.
var currencyMarks = []string{"₽", "руб.", "р."}

// ParsePrice converts a display price into integer currency units. The
// currency glyph, abbreviated currency words and all whitespace (including
// non-breaking spaces) are removed; the remainder must be a non-negative
// integer. An empty remainder parses to 0.
func ParsePrice(text string) (int, error) {
	s := text
	for _, mark := range currencyMarks {
		s = strings.ReplaceAll(s, mark, "")
	}
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", text, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid price %q: negative amount", text)
	}
	return n, nil
}
