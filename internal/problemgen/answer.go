package problemgen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotANumber is returned when the player's input is not an integer.
var ErrNotANumber = errors.New("not a number")

// ParseAnswer converts the player's raw input into an integer.
//
// Normalization rules:
// - Whitespace is trimmed
// - An optional leading sign is accepted
// - Leading zeros are ignored (e.g., "007" is 7)
// - Anything else, including an empty string or "12abc", is ErrNotANumber
func ParseAnswer(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrNotANumber
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, raw)
	}
	return int(n), nil
}

// CheckAnswer parses raw and compares it with the question's answer.
// Unparseable input is never correct.
func CheckAnswer(raw string, q *Question) bool {
	n, err := ParseAnswer(raw)
	if err != nil {
		return false
	}
	return q.Check(n)
}
