// Package rules holds the pure per-delivery rule tables: which numbers a delivery
// permits and what a pair of picked numbers does to the score.
package rules

import "github.com/bloops-games/quizcricket/internal/cricket/catalog"

// Delivery is the constraint a question round puts on the following number pick.
type Delivery struct {
	Numbers []int
	NoBall  bool
}

// Restricted reports whether the batting side is limited to 0 or 1.
func (d Delivery) Restricted() bool {
	return len(d.Numbers) == len(catalog.RestrictedOptions)
}

// ResolveDelivery applies the question outcome. Only the batting and bowling sides
// matter, never who controls them.
//
//	batting  bowling  numbers  no-ball
//	false    true     {0,1}    false
//	true     false    full     true
//	false    false    {0,1}    false
//	true     true     full     false
func ResolveDelivery(battingCorrect, bowlingCorrect bool) Delivery {
	if !battingCorrect {
		return Delivery{Numbers: RestrictedNumbers()}
	}

	return Delivery{Numbers: FullNumbers(), NoBall: !bowlingCorrect}
}

func FullNumbers() []int {
	return append([]int(nil), catalog.ScoringOptions[:]...)
}

func RestrictedNumbers() []int {
	return append([]int(nil), catalog.RestrictedOptions[:]...)
}

// Allowed reports whether n is one of numbers.
func Allowed(numbers []int, n int) bool {
	for _, v := range numbers {
		if v == n {
			return true
		}
	}

	return false
}
