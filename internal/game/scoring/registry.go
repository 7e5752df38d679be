package scoring

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/yahtzee/internal/game/dice"
)

// ErrUnknownRule is returned when a rule name is not registered.
var ErrUnknownRule = errors.New("scoring: unknown rule")

// Registry provides lookup of rules by name while preserving registration
// order for scorecards.
//
// A Registry is safe for concurrent reads once registration is complete.
type Registry struct {
	rules map[string]Rule
	order []string
}

// NewRegistry returns an empty Registry.
//
// Postcondition: Returns a non-nil *Registry ready to accept registrations.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rule)}
}

// Register adds a rule to the registry.
//
// Precondition: rule must have a non-empty Name and a non-nil Strategy.
// Postcondition: rule is retrievable via Lookup; registering the same name
// again replaces the rule but keeps its original position.
func (r *Registry) Register(rule Rule) {
	if rule.Name == "" {
		panic("Registry.Register: precondition violated: rule name must be non-empty")
	}
	if rule.Strategy == nil {
		panic("Registry.Register: precondition violated: rule strategy must be non-nil")
	}
	if _, ok := r.rules[rule.Name]; !ok {
		r.order = append(r.order, rule.Name)
	}
	r.rules[rule.Name] = rule
}

// Lookup returns the rule registered under name.
func (r *Registry) Lookup(name string) (Rule, bool) {
	rule, ok := r.rules[name]
	return rule, ok
}

// Rules returns every rule in registration order.
func (r *Registry) Rules() []Rule {
	out := make([]Rule, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.rules[name])
	}
	return out
}

// Names returns every rule name in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	return len(r.order)
}

// Evaluate scores h under the rule registered as name.
//
// Postcondition: Returns a non-negative score, or an error wrapping
// ErrUnknownRule or dice.ErrFaceRange.
func (r *Registry) Evaluate(name string, h dice.Hand) (int, error) {
	rule, ok := r.rules[name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownRule)
	}
	if err := h.Validate(); err != nil {
		return 0, fmt.Errorf("scoring %q: %w", name, err)
	}
	return rule.Evaluate(h), nil
}

// Score validates h and evaluates every registered rule against it.
//
// Postcondition: Returns the Scorecard, or an error wrapping dice.ErrFaceRange.
func (r *Registry) Score(h dice.Hand) (Scorecard, error) {
	if err := h.Validate(); err != nil {
		return Scorecard{}, fmt.Errorf("scoring hand %s: %w", h, err)
	}
	return r.Scorecard(h), nil
}

// Scorecard evaluates every registered rule against h.
//
// Precondition: h is valid.
// Postcondition: len(result.Entries) == r.Len(), in registration order.
func (r *Registry) Scorecard(h dice.Hand) Scorecard {
	entries := make([]Entry, 0, len(r.order))
	for _, name := range r.order {
		rule := r.rules[name]
		entries = append(entries, Entry{Rule: rule, Score: rule.Evaluate(h)})
	}
	return Scorecard{Hand: h, Entries: entries}
}
