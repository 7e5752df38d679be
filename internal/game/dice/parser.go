package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrParse is returned when a hand string cannot be read.
var ErrParse = errors.New("dice: malformed hand")

// ParseHand parses a hand from user input.
// Supported forms: "2,2,3,3,3", "2 2 3 3 3", "2, 2, 3, 3, 3", "22333".
// Every die must be a bare decimal digit string; signs and empty fields are
// rejected.
//
// Precondition: none.
// Postcondition: Returns a valid Hand, or an error wrapping ErrParse,
// ErrHandSize, or ErrFaceRange.
func ParseHand(s string) (Hand, error) {
	raw := s
	s = strings.TrimSpace(s)
	if s == "" {
		return Hand{}, fmt.Errorf("empty input: %w", ErrParse)
	}

	var fields []string
	switch {
	case strings.Contains(s, ","):
		fields = strings.Split(s, ",")
		for i, f := range fields {
			fields[i] = strings.TrimSpace(f)
		}
	case strings.ContainsAny(s, " \t"):
		fields = strings.Fields(s)
	default:
		// Compact form: one digit per die.
		fields = make([]string, 0, len(s))
		for _, r := range s {
			fields = append(fields, string(r))
		}
	}

	values := make([]int, 0, len(fields))
	for _, f := range fields {
		if !isDigits(f) {
			return Hand{}, fmt.Errorf("invalid die %q in %q: %w", f, raw, ErrParse)
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return Hand{}, fmt.Errorf("invalid die %q in %q: %w", f, raw, ErrParse)
		}
		values = append(values, v)
	}

	h, err := NewHand(values...)
	if err != nil {
		return Hand{}, fmt.Errorf("parsing %q: %w", raw, err)
	}
	return h, nil
}

// isDigits reports whether f is non-empty and holds only ASCII digits.
func isDigits(f string) bool {
	if f == "" {
		return false
	}
	for i := 0; i < len(f); i++ {
		if f[i] < '0' || f[i] > '9' {
			return false
		}
	}
	return true
}
