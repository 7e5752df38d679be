package scoring

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/yahtzee/internal/game/dice"
)

// Entry is one rule's score on a Scorecard.
type Entry struct {
	Rule  Rule
	Score int
}

// Scorecard is the result of evaluating a set of rules against one hand.
type Scorecard struct {
	Hand    dice.Hand
	Entries []Entry
}

// Total returns the sum of all entry scores.
func (c Scorecard) Total() int {
	total := 0
	for _, e := range c.Entries {
		total += e.Score
	}
	return total
}

// Upper returns the sum of the face-total entries (the upper section).
func (c Scorecard) Upper() int {
	total := 0
	for _, e := range c.Entries {
		if e.Rule.Strategy.Kind() == KindFaceTotal {
			total += e.Score
		}
	}
	return total
}

// Best returns the highest-scoring entry. Ties go to the earlier entry.
//
// Postcondition: Returns the zero Entry and false when the card is empty.
func (c Scorecard) Best() (Entry, bool) {
	if len(c.Entries) == 0 {
		return Entry{}, false
	}
	best := c.Entries[0]
	for _, e := range c.Entries[1:] {
		if e.Score > best.Score {
			best = e
		}
	}
	return best, true
}

// String renders the card as an aligned text table, with the hand sorted.
func (c Scorecard) String() string {
	width := len("total")
	for _, e := range c.Entries {
		if len(e.Rule.Name) > width {
			width = len(e.Rule.Name)
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "hand %s\n", c.Hand.Sorted())
	for _, e := range c.Entries {
		fmt.Fprintf(&b, "  %-*s %3d  %s\n", width, e.Rule.Name, e.Score, e.Rule.Description)
	}
	fmt.Fprintf(&b, "  %-*s %3d\n", width, "total", c.Total())
	return b.String()
}
