package scoring

// Flat awards of the standard card.
const (
	FullHouseAward     = 25
	SmallStraightAward = 30
	LargeStraightAward = 40
	YahtzeeAward       = 50
)

// The standard rule catalog. Values are never mutated after init.
var (
	Ones   = MustRule("ones", "Count and add only Ones", FaceTotal{Face: 1})
	Twos   = MustRule("twos", "Count and add only Twos", FaceTotal{Face: 2})
	Threes = MustRule("threes", "Count and add only Threes", FaceTotal{Face: 3})
	Fours  = MustRule("fours", "Count and add only Fours", FaceTotal{Face: 4})
	Fives  = MustRule("fives", "Count and add only Fives", FaceTotal{Face: 5})
	Sixes  = MustRule("sixes", "Count and add only Sixes", FaceTotal{Face: 6})

	ThreeOfKind   = MustRule("threeOfKind", "Add total of all dice", SumIfRepeated{MinCount: 3})
	FourOfKind    = MustRule("fourOfKind", "Add total of all dice", SumIfRepeated{MinCount: 4})
	FullHouse     = MustRule("fullHouse", "Score 25", ThreeAndTwo{Award: FullHouseAward})
	SmallStraight = MustRule("smallStraight", "Score 30", RunOfFour{Award: SmallStraightAward})
	LargeStraight = MustRule("largeStraight", "Score 40", RunOfFive{Award: LargeStraightAward})
	Yahtzee       = MustRule("yahtzee", "Score 50", AllSame{Award: YahtzeeAward})
	Chance        = MustRule("chance", "Score total of all 5 dice", SumIfRepeated{MinCount: 0})
)

// StandardRules returns the standard catalog in scorecard order.
func StandardRules() []Rule {
	return []Rule{
		Ones, Twos, Threes, Fours, Fives, Sixes,
		ThreeOfKind, FourOfKind, FullHouse, SmallStraight, LargeStraight, Yahtzee, Chance,
	}
}

// Standard returns a new Registry holding the standard catalog.
//
// Postcondition: the Registry holds 13 rules keyed by name.
func Standard() *Registry {
	r := NewRegistry()
	for _, rule := range StandardRules() {
		r.Register(rule)
	}
	return r
}
