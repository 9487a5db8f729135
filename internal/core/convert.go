package core

// convert.go provides type conversion functions for CSV cells.
//
// Integer columns are parsed strictly: only base-10 digits after trimming
// surrounding whitespace. Signs, decimal points, thousands separators and
// partial parses ("12abc") are rejected.

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// countRegex matches a non-negative base-10 integer.
var countRegex = regexp.MustCompile(`^[0-9]+$`)

// ParseCount parses a non-negative integer cell.
func ParseCount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if !countRegex.MatchString(s) {
		return 0, fmt.Errorf("invalid integer %q", s)
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", s, err)
	}
	return n, nil
}
