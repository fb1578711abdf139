package match

import (
	"github.com/bloops-games/quizcricket/internal/cricket/catalog"
	"github.com/bloops-games/quizcricket/internal/cricket/rules"
	"github.com/google/uuid"
)

// Phase is the controller's current step.
type Phase string

const (
	PhaseSetup        Phase = "setup"
	PhaseQuestion     Phase = "question"
	PhaseDelivery     Phase = "delivery"
	PhaseResult       Phase = "result"
	PhaseInningsBreak Phase = "innings_break"
	PhaseSummary      Phase = "summary"
)

// Setup is what the pre-match wizard decides.
type Setup struct {
	PlayerTeam       string
	OpponentTeam     string
	Difficulty       string
	Overs            int
	PlayerBowlsFirst bool
}

type BallRecord struct {
	PlayerCorrect   bool
	ComputerCorrect bool
	// Number is the batting side's pick, the one that decides the runs.
	Number         int
	Wicket         bool
	PlayerNumber   int
	ComputerNumber int
	Runs           int
	NoBall         bool
}

type WormPoint struct {
	Ball   int
	Runs   int
	Wicket bool
	Six    bool
}

type Score struct {
	Runs    int
	Wickets int
}

type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
	OutcomeTie  Outcome = "tie"
)

// Result is framed from the human team's side. Winner and Loser are empty on a tie.
type Result struct {
	Outcome Outcome
	Winner  string
	Loser   string
	Margin  int
}

// State is the single mutable aggregate of a live match.
type State struct {
	ID uuid.UUID

	Setup      Setup
	TotalBalls int

	Innings       int
	PlayerBatting bool
	BallsBowled   int
	Runs          int
	Wickets       int
	History       []BallRecord

	QuestionIndex   int
	Question        *catalog.Question
	PlayerAnswer    int
	ComputerAnswer  int
	PlayerCorrect   bool
	ComputerCorrect bool
	PlayerNumber    int
	ComputerNumber  int
	Available       []int
	NoBall          bool
	Processing      bool
	LastBall        *rules.Outcome
	InningsOver     bool

	Innings1 *Score
	Innings2 *Score
	Worm1    []WormPoint
	Worm2    []WormPoint

	Phase  Phase
	Result *Result
}

func newState(setup Setup, totalBalls int) *State {
	return &State{
		ID:            uuid.New(),
		Setup:         setup,
		TotalBalls:    totalBalls,
		Innings:       1,
		PlayerBatting: !setup.PlayerBowlsFirst,
		Available:     rules.FullNumbers(),
		PlayerAnswer:  -1,
		Phase:         PhaseQuestion,
	}
}

// Target is innings-1 runs plus one, zero before the first innings is recorded.
func (s *State) Target() int {
	if s.Innings1 == nil {
		return 0
	}

	return s.Innings1.Runs + 1
}

// BattingTeam returns the team id at the crease right now.
func (s *State) BattingTeam() string {
	if s.PlayerBatting {
		return s.Setup.PlayerTeam
	}

	return s.Setup.OpponentTeam
}

func (s *State) BowlingTeam() string {
	if s.PlayerBatting {
		return s.Setup.OpponentTeam
	}

	return s.Setup.PlayerTeam
}

// FirstInningsTeam is the team that batted first.
func (s *State) FirstInningsTeam() string {
	if s.Setup.PlayerBowlsFirst {
		return s.Setup.OpponentTeam
	}

	return s.Setup.PlayerTeam
}

func (s *State) inningsComplete() bool {
	if s.BallsBowled >= s.TotalBalls {
		return true
	}

	return s.Innings == 2 && s.Runs >= s.Target()
}

func (s *State) appendWorm(p WormPoint) {
	if s.Innings == 1 {
		s.Worm1 = append(s.Worm1, p)
		return
	}

	s.Worm2 = append(s.Worm2, p)
}
