// Package dice provides the Hand type scored by the rule catalog, boundary
// validation for caller-supplied hands, and the randomness abstraction used
// to roll new hands.
package dice

import (
	"errors"
	"fmt"
	"sort"
)

const (
	// HandSize is the number of dice in every hand.
	HandSize = 5
	// MinFace is the lowest face of a six-sided die.
	MinFace = 1
	// MaxFace is the highest face of a six-sided die.
	MaxFace = 6
)

var (
	// ErrHandSize is returned when a hand does not hold exactly HandSize dice.
	ErrHandSize = errors.New("dice: hand must hold exactly 5 dice")
	// ErrFaceRange is returned when a die value falls outside [MinFace, MaxFace].
	ErrFaceRange = errors.New("dice: face value out of range [1,6]")
)

// Hand is one completed roll of five six-sided dice.
//
// Invariant: every element is in [MinFace, MaxFace] when built through
// NewHand, ParseHand, MustHand, or RollHand.
type Hand [HandSize]int

// NewHand validates values and returns them as a Hand.
//
// Precondition: none; all inputs are checked.
// Postcondition: Returns a valid Hand, or an error wrapping ErrHandSize or
// ErrFaceRange that names the offending value.
func NewHand(values ...int) (Hand, error) {
	if len(values) != HandSize {
		return Hand{}, fmt.Errorf("got %d dice: %w", len(values), ErrHandSize)
	}
	var h Hand
	copy(h[:], values)
	if err := h.Validate(); err != nil {
		return Hand{}, err
	}
	return h, nil
}

// MustHand is like NewHand but panics on invalid input. Useful for tests and
// package-level values.
//
// Precondition: values must form a valid hand.
func MustHand(values ...int) Hand {
	h, err := NewHand(values...)
	if err != nil {
		panic("dice: MustHand failed for " + fmt.Sprint(values) + ": " + err.Error())
	}
	return h
}

// Validate checks that every die in h is in range. The zero Hand is not valid.
//
// Postcondition: Returns nil, or an error wrapping ErrFaceRange that names
// the first offending die.
func (h Hand) Validate() error {
	for i, v := range h {
		if v < MinFace || v > MaxFace {
			return fmt.Errorf("die %d has value %d: %w", i+1, v, ErrFaceRange)
		}
	}
	return nil
}

// Valid reports whether every die in h is in range.
func (h Hand) Valid() bool {
	return h.Validate() == nil
}

// Sorted returns a copy of h in ascending order.
func (h Hand) Sorted() Hand {
	s := h
	sort.Ints(s[:])
	return s
}

// String returns the dice in roll order, e.g. "[2 2 3 3 3]".
func (h Hand) String() string {
	return fmt.Sprint(h[:])
}

// Source is the randomness provider for dice rolls.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// RollHand rolls five independent six-sided dice using src.
//
// Precondition: src must be non-nil.
// Postcondition: The returned Hand is valid.
func RollHand(src Source) Hand {
	var h Hand
	for i := range h {
		h[i] = src.Intn(MaxFace) + MinFace
	}
	return h
}
