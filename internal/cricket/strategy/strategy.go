// Package strategy picks the computer's number for a delivery from weighted tables.
package strategy

import (
	"errors"
	"fmt"

	"github.com/bloops-games/quizcricket/internal/cricket/catalog"
	"github.com/bloops-games/quizcricket/internal/rng"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

type Role uint8

const (
	RoleBatting Role = iota + 1
	RoleBowling
)

func (r Role) String() string {
	switch r {
	case RoleBatting:
		return "batting"
	case RoleBowling:
		return "bowling"
	default:
		return "unknown"
	}
}

type Engine struct {
	difficulties map[string]catalog.Strategy
	src          rng.Source
}

func New(difficulties map[string]catalog.Strategy, src rng.Source) *Engine {
	return &Engine{difficulties: difficulties, src: src}
}

// Persona returns the computer player for a difficulty and role.
func (e *Engine) Persona(difficulty string, role Role) (catalog.Persona, error) {
	s, ok := e.difficulties[difficulty]
	if !ok {
		return catalog.Persona{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, difficulty)
	}

	if role == RoleBatting {
		return s.Batsman, nil
	}

	return s.Bowler, nil
}

// Choose returns the computer's number. A {0,1} domain is a fair coin; anything else is
// a weighted draw over the full six-outcome table.
func (e *Engine) Choose(difficulty string, role Role, available []int) (int, error) {
	persona, err := e.Persona(difficulty, role)
	if err != nil {
		return 0, err
	}

	if isRestricted(available) {
		if e.src.Float64() < 0.5 {
			return 0, nil
		}
		return 1, nil
	}

	return catalog.ScoringOptions[pickWeighted(persona.Weights[:], e.src.Float64())], nil
}

// pickWeighted subtracts weights in table order from u*total until the remainder is no
// longer positive. Rounding that never crosses zero falls back to the last entry.
func pickWeighted(weights []float64, u float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}

	remainder := u * total
	for i, w := range weights {
		remainder -= w
		if remainder <= 0 {
			return i
		}
	}

	return len(weights) - 1
}

func isRestricted(available []int) bool {
	return len(available) == len(catalog.RestrictedOptions) &&
		available[0] == catalog.RestrictedOptions[0] &&
		available[1] == catalog.RestrictedOptions[1]
}
