package rules

// Outcome is the effect of one resolved ball on the batting side's score.
type Outcome struct {
	// RunsDelta is the net change, negative after a wicket penalty.
	RunsDelta int
	// Scored is what the striker's number earned; zero on any match.
	Scored int
	Wicket bool
	// NoBallSurvived marks a match that a no-ball turned into a dot ball.
	NoBallSurvived bool
	NewRuns        int
}

func (o Outcome) Six() bool {
	return o.Scored == 6
}

// ResolveBall compares the batting side's number with the bowling side's. Matching
// numbers take a wicket and the penalty (floored at zero) unless the ball is a no-ball.
func ResolveBall(striker, nonStriker int, noBall bool, currentRuns, penalty int) Outcome {
	if striker == nonStriker {
		if noBall {
			return Outcome{NoBallSurvived: true, NewRuns: currentRuns}
		}

		newRuns := currentRuns - penalty
		if newRuns < 0 {
			newRuns = 0
		}

		return Outcome{
			RunsDelta: newRuns - currentRuns,
			Wicket:    true,
			NewRuns:   newRuns,
		}
	}

	return Outcome{
		RunsDelta: striker,
		Scored:    striker,
		NewRuns:   currentRuns + striker,
	}
}
