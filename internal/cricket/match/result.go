package match

// computeResult compares the recorded innings by team. Margin is the absolute run gap.
func computeResult(s *State) *Result {
	first := s.FirstInningsTeam()
	second := s.Setup.OpponentTeam
	if first == s.Setup.OpponentTeam {
		second = s.Setup.PlayerTeam
	}

	firstRuns, secondRuns := s.Innings1.Runs, s.Innings2.Runs

	switch {
	case firstRuns == secondRuns:
		return &Result{Outcome: OutcomeTie}
	case firstRuns > secondRuns:
		return framed(s, first, second, firstRuns-secondRuns)
	default:
		return framed(s, second, first, secondRuns-firstRuns)
	}
}

func framed(s *State, winner, loser string, margin int) *Result {
	outcome := OutcomeLose
	if winner == s.Setup.PlayerTeam {
		outcome = OutcomeWin
	}

	return &Result{Outcome: outcome, Winner: winner, Loser: loser, Margin: margin}
}
