package problemgen

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange is returned for a range whose Min exceeds its Max.
	ErrInvalidRange = errors.New("invalid operand range")

	// ErrUnsatisfiableRange is returned when no minuend in range can exceed
	// any subtrahend, so subtraction could never produce a positive result.
	ErrUnsatisfiableRange = errors.New("minuend range cannot exceed subtrahend range")
)

// Range is an inclusive integer interval.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Contains reports whether n lies within the range.
func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Ranges holds the operand ranges the random generator draws from.
type Ranges struct {
	Minuend    Range `yaml:"minuend"`
	Subtrahend Range `yaml:"subtrahend"`
	Addend1    Range `yaml:"addend1"`
	Addend2    Range `yaml:"addend2"`
}

// DefaultRanges returns two-digit first operands and single-digit second operands.
func DefaultRanges() Ranges {
	return Ranges{
		Minuend:    Range{Min: 20, Max: 29},
		Subtrahend: Range{Min: 1, Max: 9},
		Addend1:    Range{Min: 10, Max: 29},
		Addend2:    Range{Min: 1, Max: 9},
	}
}

// Validate checks every range and that subtraction can always terminate.
func (r Ranges) Validate() error {
	named := []struct {
		name string
		rng  Range
	}{
		{"minuend", r.Minuend},
		{"subtrahend", r.Subtrahend},
		{"addend1", r.Addend1},
		{"addend2", r.Addend2},
	}
	for _, n := range named {
		if n.rng.Min > n.rng.Max {
			return fmt.Errorf("%w: %s %d > %d", ErrInvalidRange, n.name, n.rng.Min, n.rng.Max)
		}
	}

	// At least one (minuend, subtrahend) pair must satisfy minuend > subtrahend
	// or the redraw loop never ends.
	if r.Minuend.Max <= r.Subtrahend.Min {
		return fmt.Errorf("%w: minuend %s, subtrahend %s", ErrUnsatisfiableRange, r.Minuend, r.Subtrahend)
	}
	return nil
}
