// Copyright 2025 Jonathan Amsterdam.

package argspec

import (
	"fmt"
	"strconv"
	"strings"
)

// Coercion of raw value strings into typed values.

// listSeparator splits the elements of [str], [dir] and [file] values.
const listSeparator = ";"

// parseNum parses a base-10 integer, tolerating "," and "_" as digit
// separators. Any other non-digit character is an error.
func parseNum(raw string) (int64, error) {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ',' || r == '_':
			// separator, dropped
		default:
			return 0, fmt.Errorf("invalid character %q", r)
		}
	}
	if b.Len() == 0 {
		return 0, fmt.Errorf("no digits")
	}
	return strconv.ParseInt(b.String(), 10, 64)
}

// parseYesNo maps the recognized affirmative and negative tokens to a
// bool, ignoring case.
func parseYesNo(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "y", "yes", "1":
		return true, nil
	case "n", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("want y, yes, 1, n, no or 0")
}

// checkChoice validates membership of raw in the allowed set, ignoring
// case. The value is stored with the user's casing intact.
func checkChoice(raw string, o *option) error {
	if !o.allowed[strings.ToLower(raw)] {
		return fmt.Errorf("must be one of %s", strings.Join(o.allowedOrder, ", "))
	}
	return nil
}
