// Package scoring holds the rule catalog: pure functions that classify a
// five-dice hand and map the classification to a score.
package scoring

import (
	"sort"

	"github.com/cory-johannsen/yahtzee/internal/game/dice"
)

// Sum returns the total of all dice in h.
func Sum(h dice.Hand) int {
	total := 0
	for _, d := range h {
		total += d
	}
	return total
}

// Frequencies maps each distinct face in h to the number of dice showing it.
// The frequency multiset is the map's value set.
//
// Postcondition: the values sum to dice.HandSize.
func Frequencies(h dice.Hand) map[int]int {
	freq := make(map[int]int, dice.HandSize)
	for _, d := range h {
		freq[d]++
	}
	return freq
}

// Counts returns the frequency multiset of h in ascending order,
// e.g. [2 2 2 5 5] -> [2 3].
func Counts(h dice.Hand) []int {
	freq := Frequencies(h)
	counts := make([]int, 0, len(freq))
	for _, c := range freq {
		counts = append(counts, c)
	}
	sort.Ints(counts)
	return counts
}

// CountOf returns the number of dice in h equal to face.
func CountOf(h dice.Hand, face int) int {
	n := 0
	for _, d := range h {
		if d == face {
			n++
		}
	}
	return n
}

// faceSet is a bitmask of the distinct faces present in a hand; bit f is set
// when face f appears.
type faceSet uint8

func facesOf(h dice.Hand) faceSet {
	var s faceSet
	for _, d := range h {
		s |= 1 << uint(d)
	}
	return s
}

func (s faceSet) has(faces ...int) bool {
	for _, f := range faces {
		if s&(1<<uint(f)) == 0 {
			return false
		}
	}
	return true
}

func (s faceSet) size() int {
	n := 0
	for f := dice.MinFace; f <= dice.MaxFace; f++ {
		if s.has(f) {
			n++
		}
	}
	return n
}
