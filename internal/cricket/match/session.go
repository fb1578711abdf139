// Package match runs a single two-innings game from the first question to the summary.
package match

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bloops-games/quizcricket/internal/cricket/catalog"
	"github.com/bloops-games/quizcricket/internal/cricket/question"
	"github.com/bloops-games/quizcricket/internal/cricket/rules"
	"github.com/bloops-games/quizcricket/internal/cricket/strategy"
	"github.com/bloops-games/quizcricket/internal/logging"
	"github.com/bloops-games/quizcricket/internal/rng"
	"go.uber.org/zap"
)

var (
	ErrNoMatch          = errors.New("no match in progress")
	ErrMatchInProgress  = errors.New("match already in progress")
	ErrInvalidPhase     = errors.New("action not valid in this phase")
	ErrInvalidAnswer    = errors.New("answer option out of range")
	ErrNumberNotAllowed = errors.New("number not allowed for this delivery")
	ErrProcessing       = errors.New("ball is being processed")

	ErrUnknownTeam       = errors.New("unknown team")
	ErrTeamUnavailable   = errors.New("team unavailable")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrInvalidOvers      = errors.New("overs out of range")
)

// Session owns at most one live match. Every rejected call leaves the state untouched.
type Session struct {
	mtx sync.RWMutex

	catalog  *catalog.Catalog
	src      rng.Source
	pool     *question.Pool
	strategy *strategy.Engine
	logger   *zap.SugaredLogger

	state *State
}

func NewSession(ctx context.Context, cat *catalog.Catalog, src rng.Source) (*Session, error) {
	pool, err := question.NewPool(cat.Questions, src)
	if err != nil {
		return nil, fmt.Errorf("question pool: %w", err)
	}

	return &Session{
		catalog:  cat,
		src:      src,
		pool:     pool,
		strategy: strategy.New(cat.Difficulties, src),
		logger:   logging.FromContext(ctx).Named("match"),
	}, nil
}

// Start validates the setup and issues the first question of innings 1.
func (s *Session) Start(setup Setup) (Snapshot, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.state != nil && s.state.Phase != PhaseSummary {
		return s.snapshot(), ErrMatchInProgress
	}

	setup, err := s.validate(setup)
	if err != nil {
		return s.snapshot(), err
	}

	s.pool.Reset()
	s.state = newState(setup, s.catalog.TotalBalls(setup.Overs))
	s.issueQuestion()

	s.logger.Infof("match %s started: %s vs %s, %s, %d overs",
		s.state.ID, setup.PlayerTeam, setup.OpponentTeam, setup.Difficulty, setup.Overs)

	return s.snapshot(), nil
}

func (s *Session) validate(setup Setup) (Setup, error) {
	team, ok := s.catalog.Team(setup.PlayerTeam)
	if !ok {
		return setup, fmt.Errorf("%w: %q", ErrUnknownTeam, setup.PlayerTeam)
	}
	if !team.Available {
		return setup, fmt.Errorf("%w: %q", ErrTeamUnavailable, setup.PlayerTeam)
	}

	if setup.OpponentTeam == "" {
		setup.OpponentTeam = team.Opponent
	}
	if _, ok := s.catalog.Team(setup.OpponentTeam); !ok || setup.OpponentTeam == setup.PlayerTeam {
		return setup, fmt.Errorf("%w: opponent %q", ErrUnknownTeam, setup.OpponentTeam)
	}

	if _, ok := s.catalog.Strategy(setup.Difficulty); !ok {
		return setup, fmt.Errorf("%w: %q", ErrUnknownDifficulty, setup.Difficulty)
	}

	r := s.catalog.Rules
	if setup.Overs < r.MinOvers || setup.Overs > r.MaxOvers {
		return setup, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidOvers, setup.Overs, r.MinOvers, r.MaxOvers)
	}

	return setup, nil
}

// SubmitAnswer records the human answer and resolves which numbers each side may play.
func (s *Session) SubmitAnswer(option int) (Snapshot, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := s.expect(PhaseQuestion); err != nil {
		return s.snapshot(), err
	}
	if option < 0 || option >= catalog.OptionsPerQuestion {
		return s.snapshot(), fmt.Errorf("%w: %d", ErrInvalidAnswer, option)
	}

	st := s.state
	st.PlayerAnswer = option
	st.PlayerCorrect = st.Question.IsCorrect(option)
	st.ComputerCorrect = st.Question.IsCorrect(st.ComputerAnswer)

	var delivery rules.Delivery
	if st.PlayerBatting {
		delivery = rules.ResolveDelivery(st.PlayerCorrect, st.ComputerCorrect)
	} else {
		delivery = rules.ResolveDelivery(st.ComputerCorrect, st.PlayerCorrect)
	}

	st.Available = delivery.Numbers
	st.NoBall = delivery.NoBall
	st.Phase = PhaseDelivery

	s.logger.Debugf("answer: player %v, computer %v, numbers %v, no-ball %v",
		st.PlayerCorrect, st.ComputerCorrect, st.Available, st.NoBall)

	return s.snapshot(), nil
}

// SubmitNumber plays the human number against the computer's and applies the ball.
func (s *Session) SubmitNumber(n int) (Snapshot, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.state != nil && s.state.Processing {
		return s.snapshot(), ErrProcessing
	}
	if err := s.expect(PhaseDelivery); err != nil {
		return s.snapshot(), err
	}

	st := s.state
	if !rules.Allowed(st.Available, n) {
		return s.snapshot(), fmt.Errorf("%w: %d", ErrNumberNotAllowed, n)
	}

	computer, err := s.strategy.Choose(st.Setup.Difficulty, s.computerRole(), st.Available)
	if err != nil {
		return s.snapshot(), fmt.Errorf("computer number: %w", err)
	}

	st.Processing = true
	st.PlayerNumber = n
	st.ComputerNumber = computer

	striker, nonStriker := n, computer
	if !st.PlayerBatting {
		striker, nonStriker = computer, n
	}

	outcome := rules.ResolveBall(striker, nonStriker, st.NoBall, st.Runs, s.catalog.Rules.WicketPenalty)
	if outcome.Wicket {
		st.Wickets++
	}
	st.Runs = outcome.NewRuns

	st.History = append(st.History, BallRecord{
		PlayerCorrect:   st.PlayerCorrect,
		ComputerCorrect: st.ComputerCorrect,
		Number:          striker,
		Wicket:          outcome.Wicket,
		PlayerNumber:    n,
		ComputerNumber:  computer,
		Runs:            outcome.RunsDelta,
		NoBall:          st.NoBall,
	})
	st.appendWorm(WormPoint{
		Ball:   st.BallsBowled + 1,
		Runs:   st.Runs,
		Wicket: outcome.Wicket,
		Six:    outcome.Six(),
	})

	st.BallsBowled++
	st.LastBall = &outcome
	st.InningsOver = st.inningsComplete()
	st.Phase = PhaseResult

	s.logger.Debugf("ball %d.%d: striker %d, other %d, score %d/%d",
		st.Innings, st.BallsBowled, striker, nonStriker, st.Runs, st.Wickets)

	return s.snapshot(), nil
}

// Advance moves past a shown ball result or an innings break.
func (s *Session) Advance() (Snapshot, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.state == nil {
		return s.snapshot(), ErrNoMatch
	}

	st := s.state
	switch st.Phase {
	case PhaseResult:
		st.Processing = false
		if st.InningsOver {
			s.closeInnings()
			break
		}
		s.issueQuestion()
	case PhaseInningsBreak:
		if st.Innings == 1 {
			s.startSecondInnings()
			break
		}
		st.Result = computeResult(st)
		st.Phase = PhaseSummary
		s.logger.Infof("match %s finished: %s", st.ID, st.Result.Outcome)
	default:
		return s.snapshot(), fmt.Errorf("%w: %s", ErrInvalidPhase, st.Phase)
	}

	return s.snapshot(), nil
}

// Restart drops the live match, if any, and returns to setup.
func (s *Session) Restart() Snapshot {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.state != nil {
		s.logger.Debugf("match %s discarded", s.state.ID)
	}
	s.state = nil

	return s.snapshot()
}

func (s *Session) Snapshot() Snapshot {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return s.snapshot()
}

func (s *Session) expect(phase Phase) error {
	if s.state == nil {
		return ErrNoMatch
	}
	if s.state.Phase != phase {
		return fmt.Errorf("%w: %s", ErrInvalidPhase, s.state.Phase)
	}

	return nil
}

func (s *Session) computerRole() strategy.Role {
	if s.state.PlayerBatting {
		return strategy.RoleBowling
	}

	return strategy.RoleBatting
}

// issueQuestion draws the next question and fixes the computer's answer to it.
func (s *Session) issueQuestion() {
	st := s.state
	idx, q := s.pool.Next()

	st.QuestionIndex = idx
	st.Question = &q
	st.PlayerAnswer = -1
	st.PlayerCorrect = false

	if rng.Chance(s.src, s.catalog.Rules.ComputerCorrectRate) {
		st.ComputerAnswer = q.Correct
	} else {
		st.ComputerAnswer = (q.Correct + 1 + rng.Intn(s.src, catalog.OptionsPerQuestion-1)) % catalog.OptionsPerQuestion
	}
	st.ComputerCorrect = false

	st.Phase = PhaseQuestion
}

func (s *Session) closeInnings() {
	st := s.state
	score := &Score{Runs: st.Runs, Wickets: st.Wickets}
	if st.Innings == 1 {
		st.Innings1 = score
	} else {
		st.Innings2 = score
	}

	st.Phase = PhaseInningsBreak
	s.logger.Debugf("innings %d closed at %d/%d", st.Innings, st.Runs, st.Wickets)
}

func (s *Session) startSecondInnings() {
	st := s.state
	st.Innings = 2
	st.PlayerBatting = !st.PlayerBatting
	st.BallsBowled = 0
	st.Runs = 0
	st.Wickets = 0
	st.History = nil
	st.Available = rules.FullNumbers()
	st.NoBall = false
	st.InningsOver = false
	st.LastBall = nil

	s.issueQuestion()
}

func (s *Session) snapshot() Snapshot {
	if s.state == nil {
		return Snapshot{Phase: PhaseSetup, BallsPerOver: s.catalog.Rules.BallsPerOver}
	}

	var persona string
	if p, err := s.strategy.Persona(s.state.Setup.Difficulty, s.computerRole()); err == nil {
		persona = p.Name
	}

	return s.state.snapshot(s.catalog.Rules.BallsPerOver, persona)
}
