package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bloops-games/quizcricket/internal/cache"
	"github.com/bloops-games/quizcricket/internal/logging"
	"gopkg.in/yaml.v3"
)

// rawFile mirrors the override file. Every section is optional; a present section
// replaces the matching section of the base catalog.
type rawFile struct {
	Teams        []Team          `yaml:"teams"`
	Difficulties []rawDifficulty `yaml:"difficulties"`
	Questions    []rawQuestion   `yaml:"questions"`
	Rules        *rawRules       `yaml:"rules"`
}

type rawDifficulty struct {
	ID      string     `yaml:"id"`
	Name    string     `yaml:"name"`
	Bowler  rawPersona `yaml:"bowler"`
	Batsman rawPersona `yaml:"batsman"`
}

type rawPersona struct {
	Name    string    `yaml:"name"`
	Weights []float64 `yaml:"weights"`
}

type rawQuestion struct {
	Text    string   `yaml:"text"`
	Options []string `yaml:"options"`
	Correct int      `yaml:"correct"`
}

type rawRules struct {
	WicketPenalty       *int     `yaml:"wicket_penalty"`
	BallsPerOver        *int     `yaml:"balls_per_over"`
	ComputerCorrectRate *float64 `yaml:"computer_correct_rate"`
	MinOvers            *int     `yaml:"min_overs"`
	MaxOvers            *int     `yaml:"max_overs"`
	DefaultOvers        *int     `yaml:"default_overs"`
	SecondsPerOver      *int     `yaml:"seconds_per_over"`
}

// Loader reads override files on top of a base catalog and memoizes the merged result.
type Loader struct {
	base  *Catalog
	cache cache.Cache
}

// NewLoader creates a loader. A nil cache disables memoization.
func NewLoader(base *Catalog, c cache.Cache) *Loader {
	return &Loader{base: base, cache: c}
}

// Load returns the validated catalog for path; an empty path yields the base catalog.
// Results are memoized per path until Invalidate.
func (l *Loader) Load(ctx context.Context, path string) (*Catalog, error) {
	logger := logging.FromContext(ctx).Named("catalog.Load")

	if l.cache != nil {
		if v, ok := l.cache.Get(path); ok {
			logger.Debugf("catalog %q served from cache", path)
			return v.(*Catalog), nil
		}
	}

	if path == "" {
		if err := Validate(l.base); err != nil {
			return nil, fmt.Errorf("validate base catalog: %w", err)
		}
		if l.cache != nil {
			l.cache.Add(path, l.base)
		}
		return l.base, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("catalog file %s not found: %w", path, err)
		}
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	merged, err := Parse(l.base, b)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	logger.Debugf("loaded catalog %s: %d teams, %d difficulties, %d questions",
		path, len(merged.Teams), len(merged.Difficulties), len(merged.Questions))

	if l.cache != nil {
		l.cache.Add(path, merged)
	}

	return merged, nil
}

// Invalidate drops a memoized file so the next Load re-reads it.
func (l *Loader) Invalidate(path string) {
	if l.cache != nil {
		l.cache.Delete(path)
	}
}

// Parse merges a YAML document over base and validates the result.
func Parse(base *Catalog, data []byte) (*Catalog, error) {
	var raw rawFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	merged, err := merge(base, raw)
	if err != nil {
		return nil, err
	}

	if err := Validate(merged); err != nil {
		return nil, err
	}

	return merged, nil
}

func merge(base *Catalog, raw rawFile) (*Catalog, error) {
	out := Clone(base)

	if len(raw.Teams) > 0 {
		out.Teams = make(map[string]Team, len(raw.Teams))
		out.TeamOrder = make([]string, 0, len(raw.Teams))
		for _, t := range raw.Teams {
			if _, dup := out.Teams[t.ID]; dup {
				return nil, fmt.Errorf("%w: duplicate team %q", ErrInvalidCatalog, t.ID)
			}
			out.Teams[t.ID] = t
			out.TeamOrder = append(out.TeamOrder, t.ID)
		}
	}

	if len(raw.Difficulties) > 0 {
		out.Difficulties = make(map[string]Strategy, len(raw.Difficulties))
		out.DifficultyOrder = make([]string, 0, len(raw.Difficulties))
		for _, d := range raw.Difficulties {
			if _, dup := out.Difficulties[d.ID]; dup {
				return nil, fmt.Errorf("%w: duplicate difficulty %q", ErrInvalidCatalog, d.ID)
			}
			bowler, err := d.Bowler.persona(d.ID + ".bowler")
			if err != nil {
				return nil, err
			}
			batsman, err := d.Batsman.persona(d.ID + ".batsman")
			if err != nil {
				return nil, err
			}
			out.Difficulties[d.ID] = Strategy{Name: d.Name, Bowler: bowler, Batsman: batsman}
			out.DifficultyOrder = append(out.DifficultyOrder, d.ID)
		}
	}

	if len(raw.Questions) > 0 {
		out.Questions = make([]Question, 0, len(raw.Questions))
		for i, q := range raw.Questions {
			if len(q.Options) != OptionsPerQuestion {
				return nil, fmt.Errorf("%w: questions[%d] must have %d options, got %d",
					ErrInvalidCatalog, i, OptionsPerQuestion, len(q.Options))
			}
			question := Question{Text: q.Text, Correct: q.Correct}
			copy(question.Options[:], q.Options)
			out.Questions = append(out.Questions, question)
		}
	}

	if r := raw.Rules; r != nil {
		if r.WicketPenalty != nil {
			out.Rules.WicketPenalty = *r.WicketPenalty
		}
		if r.BallsPerOver != nil {
			out.Rules.BallsPerOver = *r.BallsPerOver
		}
		if r.ComputerCorrectRate != nil {
			out.Rules.ComputerCorrectRate = *r.ComputerCorrectRate
		}
		if r.MinOvers != nil {
			out.Rules.MinOvers = *r.MinOvers
		}
		if r.MaxOvers != nil {
			out.Rules.MaxOvers = *r.MaxOvers
		}
		if r.DefaultOvers != nil {
			out.Rules.DefaultOvers = *r.DefaultOvers
		}
		if r.SecondsPerOver != nil {
			out.Rules.SecondsPerOver = *r.SecondsPerOver
		}
	}

	return out, nil
}

func (p rawPersona) persona(name string) (Persona, error) {
	if len(p.Weights) != len(ScoringOptions) {
		return Persona{}, fmt.Errorf("%w: %s.weights must have %d entries, got %d",
			ErrInvalidCatalog, name, len(ScoringOptions), len(p.Weights))
	}

	persona := Persona{Name: p.Name}
	copy(persona.Weights[:], p.Weights)
	return persona, nil
}

// Clone deep copies a catalog so overrides never alias the base tables.
func Clone(c *Catalog) *Catalog {
	out := &Catalog{
		Teams:           make(map[string]Team, len(c.Teams)),
		TeamOrder:       append([]string(nil), c.TeamOrder...),
		Difficulties:    make(map[string]Strategy, len(c.Difficulties)),
		DifficultyOrder: append([]string(nil), c.DifficultyOrder...),
		Questions:       append([]Question(nil), c.Questions...),
		Rules:           c.Rules,
	}
	for k, v := range c.Teams {
		out.Teams[k] = v
	}
	for k, v := range c.Difficulties {
		out.Difficulties[k] = v
	}

	return out
}
