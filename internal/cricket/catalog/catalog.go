// Package catalog describes the read-only configuration a match is played against:
// teams, AI weight tables, the question pool and the scalar rules.
package catalog

// ScoringOptions is the canonical set of outcomes a delivery can score, in table order.
var ScoringOptions = [6]int{0, 1, 2, 3, 4, 6}

// RestrictedOptions is the scoring range left to a batting side that answered wrong.
var RestrictedOptions = [2]int{0, 1}

const OptionsPerQuestion = 4

type Team struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Opponent  string `yaml:"opponent"`
	Available bool   `yaml:"available"`
}

// Persona is one computer player: a display name and a weight per scoring option.
type Persona struct {
	Name    string     `yaml:"name"`
	Weights [6]float64 `yaml:"weights"`
}

// Strategy holds the two personas used at one difficulty.
type Strategy struct {
	Name    string  `yaml:"name"`
	Bowler  Persona `yaml:"bowler"`
	Batsman Persona `yaml:"batsman"`
}

type Question struct {
	Text    string    `yaml:"text"`
	Options [4]string `yaml:"options"`
	Correct int       `yaml:"correct"`
}

// IsCorrect reports whether the option index answers the question.
func (q Question) IsCorrect(option int) bool {
	return option == q.Correct
}

type Rules struct {
	WicketPenalty       int     `yaml:"wicket_penalty"`
	BallsPerOver        int     `yaml:"balls_per_over"`
	ComputerCorrectRate float64 `yaml:"computer_correct_rate"`
	MinOvers            int     `yaml:"min_overs"`
	MaxOvers            int     `yaml:"max_overs"`
	DefaultOvers        int     `yaml:"default_overs"`
	SecondsPerOver      int     `yaml:"seconds_per_over"`
}

// Catalog is immutable once validated. The order slices keep presentation stable.
type Catalog struct {
	Teams           map[string]Team
	TeamOrder       []string
	Difficulties    map[string]Strategy
	DifficultyOrder []string
	Questions       []Question
	Rules           Rules
}

func (c *Catalog) Team(id string) (Team, bool) {
	t, ok := c.Teams[id]
	return t, ok
}

func (c *Catalog) Strategy(difficulty string) (Strategy, bool) {
	s, ok := c.Difficulties[difficulty]
	return s, ok
}

// TotalBalls converts an overs count into deliveries per innings.
func (c *Catalog) TotalBalls(overs int) int {
	return overs * c.Rules.BallsPerOver
}

// AvailableTeams lists playable teams in catalog order.
func (c *Catalog) AvailableTeams() []Team {
	teams := make([]Team, 0, len(c.TeamOrder))
	for _, id := range c.TeamOrder {
		if t := c.Teams[id]; t.Available {
			teams = append(teams, t)
		}
	}

	return teams
}
