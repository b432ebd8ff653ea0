package ioingest

import (
	"strconv"
	"strings"
)

func trim(s string) string {
	return strings.TrimSpace(s)
}

// parseReads parses a reads-count cell. Thousands separators are
// tolerated; negative or non-numeric values fail.
func parseReads(s string) (int, bool) {
	s = strings.ReplaceAll(trim(s), ",", "")
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// parseDate normalizes a date cell to its numeric encoding: "20240301",
// "2024-03-01" and "2024.03.01" all become 20240301. A bare campaign
// number passes through unchanged. Cells without digits fail, the row
// has no sampling identifier.
func parseDate(s string) (int, bool) {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseFloatPtr parses an optional measurement cell. Empty or
// non-numeric cells yield nil, never zero.
func parseFloatPtr(s string) *float64 {
	s = trim(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
