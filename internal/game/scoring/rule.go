package scoring

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/yahtzee/internal/game/dice"
)

// ErrInvalidRule is returned when a rule's name or parameters are unusable.
var ErrInvalidRule = errors.New("scoring: invalid rule")

// Rule is a named scoring function bound to fixed parameters.
//
// Invariant: Name is non-empty; Strategy is non-nil with valid parameters.
type Rule struct {
	Name        string
	Description string
	Strategy    Strategy
}

// NewRule builds a Rule after checking its parameters.
//
// Postcondition: Returns a Rule satisfying the Rule invariant, or an error
// wrapping ErrInvalidRule.
func NewRule(name, description string, s Strategy) (Rule, error) {
	if name == "" {
		return Rule{}, fmt.Errorf("rule name must not be empty: %w", ErrInvalidRule)
	}
	if err := validateStrategy(s); err != nil {
		return Rule{}, fmt.Errorf("rule %q: %v: %w", name, err, ErrInvalidRule)
	}
	return Rule{Name: name, Description: description, Strategy: s}, nil
}

// MustRule is like NewRule but panics on error. Used for the standard catalog.
func MustRule(name, description string, s Strategy) Rule {
	r, err := NewRule(name, description, s)
	if err != nil {
		panic(err.Error())
	}
	return r
}

// Evaluate returns the score h earns under r. Zero means the rule is not
// satisfied.
//
// Precondition: h is valid.
// Postcondition: return value >= 0.
func (r Rule) Evaluate(h dice.Hand) int {
	return r.Strategy.Score(h)
}

// String returns the rule name and its bound strategy.
func (r Rule) String() string {
	return fmt.Sprintf("%s: %s", r.Name, r.Strategy)
}

func validateStrategy(s Strategy) error {
	switch st := s.(type) {
	case nil:
		return errors.New("strategy must not be nil")
	case FaceTotal:
		if st.Face < dice.MinFace || st.Face > dice.MaxFace {
			return fmt.Errorf("face must be in [1,6], got %d", st.Face)
		}
	case SumIfRepeated:
		if st.MinCount < 0 || st.MinCount > dice.HandSize {
			return fmt.Errorf("min_count must be in [0,5], got %d", st.MinCount)
		}
	case ThreeAndTwo:
		return validateAward(st.Award)
	case RunOfFour:
		return validateAward(st.Award)
	case RunOfFive:
		return validateAward(st.Award)
	case AllSame:
		return validateAward(st.Award)
	}
	return nil
}

func validateAward(a int) error {
	if a < 0 {
		return fmt.Errorf("award must not be negative, got %d", a)
	}
	return nil
}
