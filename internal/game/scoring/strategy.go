package scoring

import (
	"fmt"

	"github.com/cory-johannsen/yahtzee/internal/game/dice"
)

// Kind tags a scoring strategy. The string form is the name used in YAML
// rule tables.
type Kind string

const (
	KindFaceTotal     Kind = "face_total"
	KindSumIfRepeated Kind = "sum_if_repeated"
	KindThreeAndTwo   Kind = "three_and_two"
	KindRunOfFour     Kind = "run_of_four"
	KindRunOfFive     Kind = "run_of_five"
	KindAllSame       Kind = "all_same"
)

// Kinds lists every strategy kind.
var Kinds = []Kind{
	KindFaceTotal,
	KindSumIfRepeated,
	KindThreeAndTwo,
	KindRunOfFour,
	KindRunOfFive,
	KindAllSame,
}

// Strategy is a classification algorithm with its parameters bound.
// The set is closed: only the types in this package implement it.
//
// Invariant: Score is total over valid hands, deterministic, and never negative.
type Strategy interface {
	Score(h dice.Hand) int
	Kind() Kind
	fmt.Stringer
	sealed()
}

// FaceTotal scores Face for every die showing Face.
type FaceTotal struct {
	Face int
}

func (s FaceTotal) Score(h dice.Hand) int { return s.Face * CountOf(h, s.Face) }
func (FaceTotal) Kind() Kind              { return KindFaceTotal }
func (s FaceTotal) String() string        { return fmt.Sprintf("%s(face=%d)", KindFaceTotal, s.Face) }
func (FaceTotal) sealed()                 {}

// SumIfRepeated scores the sum of all dice when some face appears at least
// MinCount times. MinCount 0 always scores the sum.
type SumIfRepeated struct {
	MinCount int
}

func (s SumIfRepeated) Score(h dice.Hand) int {
	for _, c := range Frequencies(h) {
		if c >= s.MinCount {
			return Sum(h)
		}
	}
	return 0
}
func (SumIfRepeated) Kind() Kind { return KindSumIfRepeated }
func (s SumIfRepeated) String() string {
	return fmt.Sprintf("%s(min_count=%d)", KindSumIfRepeated, s.MinCount)
}
func (SumIfRepeated) sealed() {}

// ThreeAndTwo awards Award for a hand split exactly three and two.
type ThreeAndTwo struct {
	Award int
}

func (s ThreeAndTwo) Score(h dice.Hand) int {
	var pair, triple bool
	for _, c := range Frequencies(h) {
		switch c {
		case 2:
			pair = true
		case 3:
			triple = true
		}
	}
	if pair && triple {
		return s.Award
	}
	return 0
}
func (ThreeAndTwo) Kind() Kind { return KindThreeAndTwo }
func (s ThreeAndTwo) String() string {
	return fmt.Sprintf("%s(award=%d)", KindThreeAndTwo, s.Award)
}
func (ThreeAndTwo) sealed() {}

// RunOfFour awards Award for any run of four consecutive faces.
type RunOfFour struct {
	Award int
}

func (s RunOfFour) Score(h dice.Hand) int {
	f := facesOf(h)
	low := f.has(2, 3, 4) && (f.has(1) || f.has(5))
	high := f.has(3, 4, 5) && (f.has(2) || f.has(6))
	if low || high {
		return s.Award
	}
	return 0
}
func (RunOfFour) Kind() Kind { return KindRunOfFour }
func (s RunOfFour) String() string {
	return fmt.Sprintf("%s(award=%d)", KindRunOfFour, s.Award)
}
func (RunOfFour) sealed() {}

// RunOfFive awards Award for five consecutive faces. Five distinct faces
// out of six are consecutive unless both 1 and 6 are present.
type RunOfFive struct {
	Award int
}

func (s RunOfFive) Score(h dice.Hand) int {
	f := facesOf(h)
	if f.size() == dice.HandSize && !f.has(1, 6) {
		return s.Award
	}
	return 0
}
func (RunOfFive) Kind() Kind { return KindRunOfFive }
func (s RunOfFive) String() string {
	return fmt.Sprintf("%s(award=%d)", KindRunOfFive, s.Award)
}
func (RunOfFive) sealed() {}

// AllSame awards Award when all five dice show one face.
type AllSame struct {
	Award int
}

func (s AllSame) Score(h dice.Hand) int {
	freq := Frequencies(h)
	if len(freq) != 1 {
		return 0
	}
	for _, c := range freq {
		if c == dice.HandSize {
			return s.Award
		}
	}
	return 0
}
func (AllSame) Kind() Kind       { return KindAllSame }
func (s AllSame) String() string { return fmt.Sprintf("%s(award=%d)", KindAllSame, s.Award) }
func (AllSame) sealed()          {}
