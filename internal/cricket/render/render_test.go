package render

import (
	"strings"
	"testing"

	"github.com/bloops-games/quizcricket/internal/cricket/match"
	"github.com/bloops-games/quizcricket/internal/cricket/resource"
	"github.com/bloops-games/quizcricket/internal/cricket/rules"
)

func TestBallDots(t *testing.T) {
	t.Parallel()

	history := []match.BallRecord{
		{Runs: 4}, {Runs: 0}, {Wicket: true, Runs: -15}, {NoBall: true}, {Runs: 6}, {Runs: 1}, {Runs: 2},
	}

	tests := []struct {
		name     string
		n        int
		expected string
	}{
		{name: "last_six", n: 6, expected: ". W nb 6 1 2"},
		{name: "last_two", n: 2, expected: "1 2"},
		{name: "all", n: 0, expected: "4 . W nb 6 1 2"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := BallDots(history, tt.n); got != tt.expected {
				t.Errorf("expected %#v got %#v", tt.expected, got)
			}
		})
	}

	if len(history) != 7 {
		t.Errorf("history was truncated")
	}
}

func TestNumbersFollowDisplayOrder(t *testing.T) {
	t.Parallel()

	if got := Numbers(rules.FullNumbers()); got != "[4] [6] [2] [3] [0] [1]" {
		t.Errorf("expected %#v got %#v", "[4] [6] [2] [3] [0] [1]", got)
	}
	if got := Numbers(rules.RestrictedNumbers()); got != "[0] [1]" {
		t.Errorf("expected %#v got %#v", "[0] [1]", got)
	}
}

func TestScoreboardChase(t *testing.T) {
	t.Parallel()

	snap := match.Snapshot{
		Setup:        match.Setup{PlayerTeam: "india", OpponentTeam: "pakistan"},
		Innings:      2,
		TotalBalls:   6,
		BallsPerOver: 6,
		BallsBowled:  4,
		Runs:         10,
		Wickets:      1,
		Target:       12,
		History:      []match.BallRecord{{Wicket: true}, {Runs: 6}, {Runs: 4}, {Runs: 0}},
	}

	got := Scoreboard(snap, resource.Catalog(), DotsShown)
	expected := "Pakistan 10/1 (0.4 ov) | Target 12 | need 2 runs from 2 balls | W 6 4 ."
	if got != expected {
		t.Errorf("expected %#v got %#v", expected, got)
	}
}

func TestBallResult(t *testing.T) {
	t.Parallel()

	snap := match.Snapshot{
		PlayerBatting:   true,
		PlayerNumber:    3,
		ComputerNumber:  3,
		ComputerPersona: "Monty",
		LastBall:        &rules.Outcome{Wicket: true, RunsDelta: -15},
	}

	got := BallResult(snap)
	if !strings.Contains(got, resource.TextWicket) || !strings.Contains(got, "(-15)") || !strings.Contains(got, "Monty 3") {
		t.Errorf("unexpected ball result %#v", got)
	}

	snap.LastBall = &rules.Outcome{Scored: 6, RunsDelta: 6}
	snap.InningsOver = true
	got = BallResult(snap)
	if !strings.Contains(got, resource.TextSix) || !strings.Contains(got, resource.TextInningsOver) {
		t.Errorf("unexpected ball result %#v", got)
	}

	if BallResult(match.Snapshot{}) != "" {
		t.Errorf("expected empty result without a ball")
	}
}

func TestWorm(t *testing.T) {
	t.Parallel()

	snap := match.Snapshot{
		Setup: match.Setup{PlayerTeam: "england", OpponentTeam: "australia"},
		Worm1: []match.WormPoint{{Ball: 1, Runs: 6, Six: true}, {Ball: 2, Runs: 12, Six: true}},
		Worm2: []match.WormPoint{{Ball: 1, Runs: 0, Wicket: true}},
	}

	lines := strings.Split(Worm(snap, resource.Catalog()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines got %d: %q", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "England") || !strings.HasSuffix(lines[0], "▄█ 12") {
		t.Errorf("unexpected first innings line %#v", lines[0])
	}
	if !strings.HasSuffix(lines[1], "66") {
		t.Errorf("unexpected marker line %#v", lines[1])
	}
	if !strings.HasPrefix(lines[2], "Australia") || !strings.HasSuffix(lines[3], "W") {
		t.Errorf("unexpected second innings %q", lines[2:])
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()

	cat := resource.Catalog()
	base := match.Snapshot{
		Setup:    match.Setup{PlayerTeam: "england", OpponentTeam: "australia"},
		Innings1: &match.Score{Runs: 11},
		Innings2: &match.Score{Runs: 12, Wickets: 1},
	}

	tests := []struct {
		name     string
		result   *match.Result
		expected string
	}{
		{name: "lose", result: &match.Result{Outcome: match.OutcomeLose, Winner: "australia", Loser: "england", Margin: 1}, expected: "Australia won by 1 run"},
		{name: "win", result: &match.Result{Outcome: match.OutcomeWin, Winner: "england", Loser: "australia", Margin: 3}, expected: "England won by 3 runs"},
		{name: "tie", result: &match.Result{Outcome: match.OutcomeTie}, expected: resource.TextTie},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			snap := base
			snap.Result = tt.result
			got := Summary(snap, cat)
			if !strings.Contains(got, tt.expected) {
				t.Errorf("expected %#v in %#v", tt.expected, got)
			}
			if !strings.Contains(got, "England 11/0") || !strings.Contains(got, "Australia 12/1") {
				t.Errorf("missing innings scores in %#v", got)
			}
		})
	}
}
