// Package builder walks the player through the pre-match choices: team, difficulty, overs.
package builder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bloops-games/quizcricket/internal/cricket/catalog"
	"github.com/bloops-games/quizcricket/internal/cricket/match"
)

type stepKind uint8

const (
	stepKindTeam stepKind = iota + 1
	stepKindDifficulty
	stepKindOvers
	stepKindDone
)

var steps = []stepKind{stepKindTeam, stepKindDifficulty, stepKindOvers, stepKindDone}

var (
	ErrTeamUnavailable = errors.New("team unavailable")
	ErrUnknownOption   = errors.New("unknown option")
	ErrNotDone         = errors.New("setup not finished")
)

// Option is one selectable choice of the current step.
type Option struct {
	Key      string
	Label    string
	Disabled bool
}

type Session struct {
	catalog *catalog.Catalog
	state   *stateMachine

	team       string
	difficulty string
	overs      int
}

func NewSession(cat *catalog.Catalog) *Session {
	return &Session{
		catalog: cat,
		state:   newStateMachine(steps...),
		overs:   cat.Rules.DefaultOvers,
	}
}

// Prompt returns the question for the current step.
func (s *Session) Prompt() string {
	switch s.state.curr() {
	case stepKindTeam:
		return textChooseTeam
	case stepKindDifficulty:
		return textChooseDifficulty
	case stepKindOvers:
		return fmt.Sprintf(textChooseOvers, s.catalog.Rules.MinOvers, s.catalog.Rules.MaxOvers, s.overs)
	default:
		return textReady
	}
}

func (s *Session) Options() []Option {
	var options []Option

	switch s.state.curr() {
	case stepKindTeam:
		for _, id := range s.catalog.TeamOrder {
			t := s.catalog.Teams[id]
			label := t.Name
			if !t.Available {
				label += " " + textComingSoon
			}
			options = append(options, Option{Key: t.ID, Label: label, Disabled: !t.Available})
		}
	case stepKindDifficulty:
		for _, id := range s.catalog.DifficultyOrder {
			d := s.catalog.Difficulties[id]
			options = append(options, Option{
				Key:   id,
				Label: fmt.Sprintf(textDifficultyOption, d.Name, d.Bowler.Name, d.Batsman.Name),
			})
		}
	case stepKindOvers:
		for o := s.catalog.Rules.MinOvers; o <= s.catalog.Rules.MaxOvers; o++ {
			lo, hi := EstimateMinutes(o, s.catalog.Rules.SecondsPerOver)
			options = append(options, Option{
				Key:   strconv.Itoa(o),
				Label: fmt.Sprintf(textOversOption, o, lo, hi),
			})
		}
	}

	return options
}

// Choose applies input to the current step and moves forward. Input is either an option
// key or its 1-based position. On the overs step an empty input keeps the default.
func (s *Session) Choose(input string) error {
	input = strings.TrimSpace(strings.ToLower(input))

	switch s.state.curr() {
	case stepKindTeam:
		opt, err := s.lookup(input)
		if err != nil {
			return err
		}
		if opt.Disabled {
			return fmt.Errorf("%w: %s", ErrTeamUnavailable, opt.Key)
		}
		s.team = opt.Key
	case stepKindDifficulty:
		opt, err := s.lookup(input)
		if err != nil {
			return err
		}
		s.difficulty = opt.Key
	case stepKindOvers:
		if input != "" {
			overs, err := strconv.Atoi(input)
			if err != nil || overs < s.catalog.Rules.MinOvers || overs > s.catalog.Rules.MaxOvers {
				return fmt.Errorf("%w: %q", ErrUnknownOption, input)
			}
			s.overs = overs
		}
	default:
		return nil
	}

	s.state.next()
	return nil
}

// Back returns to the previous step, false when already at the first.
func (s *Session) Back() bool {
	return s.state.prev()
}

func (s *Session) Done() bool {
	return s.state.isMax()
}

// Setup returns the chosen match setup. The opponent is the team's default opponent.
func (s *Session) Setup() (match.Setup, error) {
	if !s.Done() {
		return match.Setup{}, ErrNotDone
	}

	return match.Setup{
		PlayerTeam:   s.team,
		OpponentTeam: s.catalog.Teams[s.team].Opponent,
		Difficulty:   s.difficulty,
		Overs:        s.overs,
	}, nil
}

func (s *Session) lookup(input string) (Option, error) {
	options := s.Options()

	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(options) {
		return options[n-1], nil
	}

	for _, o := range options {
		if o.Key == input {
			return o, nil
		}
	}

	return Option{}, fmt.Errorf("%w: %q", ErrUnknownOption, input)
}

// EstimateMinutes returns a rough playing time range for a match of overs per side.
func EstimateMinutes(overs, secondsPerOver int) (min, max int) {
	min = overs * secondsPerOver * 2 / 60
	max = min + (min*15+99)/100
	return min, max
}
