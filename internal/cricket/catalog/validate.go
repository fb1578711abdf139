package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// Validate checks every cross reference and table shape, reporting all problems at once.
func Validate(c *Catalog) error {
	var errs []string

	if len(c.Teams) == 0 {
		errs = append(errs, "teams must not be empty")
	}
	if len(c.TeamOrder) != len(c.Teams) {
		errs = append(errs, "team order must list every team exactly once")
	}
	for _, id := range c.TeamOrder {
		if _, ok := c.Teams[id]; !ok {
			errs = append(errs, fmt.Sprintf("team order references unknown team %q", id))
		}
	}
	for id, t := range c.Teams {
		if t.ID != id {
			errs = append(errs, fmt.Sprintf("team %q has mismatched id %q", id, t.ID))
		}
		if t.Name == "" {
			errs = append(errs, fmt.Sprintf("team %q has no name", id))
		}
		if t.Opponent == id {
			errs = append(errs, fmt.Sprintf("team %q cannot be its own opponent", id))
		}
		if _, ok := c.Teams[t.Opponent]; !ok {
			errs = append(errs, fmt.Sprintf("team %q has unknown opponent %q", id, t.Opponent))
		}
	}

	if len(c.Difficulties) == 0 {
		errs = append(errs, "difficulties must not be empty")
	}
	if len(c.DifficultyOrder) != len(c.Difficulties) {
		errs = append(errs, "difficulty order must list every difficulty exactly once")
	}
	for _, id := range c.DifficultyOrder {
		if _, ok := c.Difficulties[id]; !ok {
			errs = append(errs, fmt.Sprintf("difficulty order references unknown difficulty %q", id))
		}
	}
	for id, s := range c.Difficulties {
		errs = append(errs, validateWeights(id+".bowler", s.Bowler.Weights)...)
		errs = append(errs, validateWeights(id+".batsman", s.Batsman.Weights)...)
	}

	if len(c.Questions) == 0 {
		errs = append(errs, "questions must not be empty")
	}
	for i, q := range c.Questions {
		if q.Text == "" {
			errs = append(errs, fmt.Sprintf("questions[%d] has no text", i))
		}
		if q.Correct < 0 || q.Correct >= OptionsPerQuestion {
			errs = append(errs, fmt.Sprintf("questions[%d].correct must be in [0,%d)", i, OptionsPerQuestion))
		}
	}

	r := c.Rules
	if r.WicketPenalty < 0 {
		errs = append(errs, "rules.wicket_penalty must be >= 0")
	}
	if r.BallsPerOver <= 0 {
		errs = append(errs, "rules.balls_per_over must be >= 1")
	}
	if r.ComputerCorrectRate < 0 || r.ComputerCorrectRate > 1 {
		errs = append(errs, "rules.computer_correct_rate must be in [0,1]")
	}
	if r.MinOvers <= 0 || r.MaxOvers < r.MinOvers {
		errs = append(errs, "rules.min_overs must be >= 1 and <= max_overs")
	}
	if r.DefaultOvers < r.MinOvers || r.DefaultOvers > r.MaxOvers {
		errs = append(errs, "rules.default_overs must be within [min_overs, max_overs]")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(errs, "; "))
	}

	return nil
}

func validateWeights(name string, weights [6]float64) []string {
	var errs []string
	var total float64
	for i, w := range weights {
		if w < 0 {
			errs = append(errs, fmt.Sprintf("%s.weights[%d] must be >= 0", name, i))
		}
		total += w
	}
	if total <= 0 {
		errs = append(errs, fmt.Sprintf("%s.weights must not all be zero", name))
	}

	return errs
}
