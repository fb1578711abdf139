package match

import (
	"strconv"

	"github.com/bloops-games/quizcricket/internal/cricket/catalog"
	"github.com/bloops-games/quizcricket/internal/cricket/rules"
	"github.com/google/uuid"
)

// Snapshot is a read-only copy of the match handed to presentation code. Mutating it
// never touches the session.
type Snapshot struct {
	ID    uuid.UUID
	Phase Phase
	Setup Setup

	TotalBalls    int
	BallsPerOver  int
	Innings       int
	PlayerBatting bool
	BallsBowled   int
	Runs          int
	Wickets       int
	Target        int

	Question        *catalog.Question
	PlayerAnswer    int
	ComputerAnswer  int
	PlayerCorrect   bool
	ComputerCorrect bool
	Available       []int
	NoBall          bool
	PlayerNumber    int
	ComputerNumber  int
	LastBall        *rules.Outcome
	History         []BallRecord

	Innings1 *Score
	Innings2 *Score
	Worm1    []WormPoint
	Worm2    []WormPoint

	InningsOver   bool
	MatchComplete bool
	Result        *Result

	// ComputerPersona names the computer player in its current role.
	ComputerPersona string
}

// BallsRemaining in the current innings.
func (s Snapshot) BallsRemaining() int {
	return s.TotalBalls - s.BallsBowled
}

// Overs formats balls bowled the cricket way, "2.3" for two overs and three balls.
func (s Snapshot) Overs() string {
	if s.BallsPerOver <= 0 {
		return strconv.Itoa(s.BallsBowled)
	}

	return strconv.Itoa(s.BallsBowled/s.BallsPerOver) + "." + strconv.Itoa(s.BallsBowled%s.BallsPerOver)
}

// BattingTeam returns the id of the team at the crease.
func (s Snapshot) BattingTeam() string {
	if s.PlayerBatting {
		return s.Setup.PlayerTeam
	}

	return s.Setup.OpponentTeam
}

func (s Snapshot) BowlingTeam() string {
	if s.PlayerBatting {
		return s.Setup.OpponentTeam
	}

	return s.Setup.PlayerTeam
}

func (s *State) snapshot(ballsPerOver int, persona string) Snapshot {
	snap := Snapshot{
		ID:              s.ID,
		Phase:           s.Phase,
		Setup:           s.Setup,
		TotalBalls:      s.TotalBalls,
		BallsPerOver:    ballsPerOver,
		Innings:         s.Innings,
		PlayerBatting:   s.PlayerBatting,
		BallsBowled:     s.BallsBowled,
		Runs:            s.Runs,
		Wickets:         s.Wickets,
		Target:          s.Target(),
		PlayerAnswer:    s.PlayerAnswer,
		ComputerAnswer:  s.ComputerAnswer,
		PlayerCorrect:   s.PlayerCorrect,
		ComputerCorrect: s.ComputerCorrect,
		Available:       append([]int(nil), s.Available...),
		NoBall:          s.NoBall,
		PlayerNumber:    s.PlayerNumber,
		ComputerNumber:  s.ComputerNumber,
		History:         append([]BallRecord(nil), s.History...),
		Worm1:           append([]WormPoint(nil), s.Worm1...),
		Worm2:           append([]WormPoint(nil), s.Worm2...),
		InningsOver:     s.InningsOver,
		MatchComplete:   s.Phase == PhaseSummary || (s.Phase == PhaseInningsBreak && s.Innings == 2),
		ComputerPersona: persona,
	}

	// The computer's answer is fixed when the question is issued but stays hidden
	// until the human has answered.
	if s.Phase == PhaseQuestion {
		snap.ComputerAnswer = -1
	}

	if s.Question != nil {
		q := *s.Question
		snap.Question = &q
	}
	if s.LastBall != nil {
		o := *s.LastBall
		snap.LastBall = &o
	}
	if s.Innings1 != nil {
		sc := *s.Innings1
		snap.Innings1 = &sc
	}
	if s.Innings2 != nil {
		sc := *s.Innings2
		snap.Innings2 = &sc
	}
	if s.Result != nil {
		r := *s.Result
		snap.Result = &r
	}

	return snap
}
