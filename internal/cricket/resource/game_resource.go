package resource

import "github.com/bloops-games/quizcricket/internal/cricket/catalog"

const (
	WicketPenalty       = 15
	BallsPerOver        = 6
	ComputerCorrectRate = 0.66
	SecondsPerOver      = 75
	MinOvers            = 1
	MaxOvers            = 10
	DefaultOvers        = 3
)

// DisplayOrder is the order number buttons are laid out in.
var DisplayOrder = []int{4, 6, 2, 3, 0, 1}

var Teams = []catalog.Team{
	{ID: "england", Name: "England", Opponent: "australia", Available: true},
	{ID: "australia", Name: "Australia", Opponent: "england", Available: true},
	{ID: "india", Name: "India", Opponent: "pakistan", Available: true},
	{ID: "pakistan", Name: "Pakistan", Opponent: "india", Available: true},
	{ID: "newzealand", Name: "New Zealand", Opponent: "southafrica"},
	{ID: "southafrica", Name: "South Africa", Opponent: "newzealand"},
	{ID: "westindies", Name: "West Indies", Opponent: "srilanka"},
	{ID: "srilanka", Name: "Sri Lanka", Opponent: "westindies"},
	{ID: "zimbabwe", Name: "Zimbabwe", Opponent: "kenya"},
	{ID: "kenya", Name: "Kenya", Opponent: "zimbabwe"},
}

// Bowlers spread their weight to be hard to read, batsmen lean on 4 and 6.
var Difficulties = []struct {
	ID string
	catalog.Strategy
}{
	{ID: "easy", Strategy: catalog.Strategy{
		Name:    "Easy",
		Bowler:  catalog.Persona{Name: "Monty", Weights: [6]float64{17, 17, 17, 16, 17, 16}},
		Batsman: catalog.Persona{Name: "Grace", Weights: [6]float64{5, 8, 13, 20, 28, 26}},
	}},
	{ID: "medium", Strategy: catalog.Strategy{
		Name:    "Medium",
		Bowler:  catalog.Persona{Name: "Kumble", Weights: [6]float64{18, 15, 15, 16, 18, 18}},
		Batsman: catalog.Persona{Name: "Gavaskar", Weights: [6]float64{3, 5, 9, 18, 32, 33}},
	}},
	{ID: "hard", Strategy: catalog.Strategy{
		Name:    "Hard",
		Bowler:  catalog.Persona{Name: "Warne", Weights: [6]float64{12, 10, 12, 14, 23, 29}},
		Batsman: catalog.Persona{Name: "Bradman", Weights: [6]float64{2, 4, 7, 15, 32, 40}},
	}},
	{ID: "legendary", Strategy: catalog.Strategy{
		Name:    "Legendary",
		Bowler:  catalog.Persona{Name: "Murali", Weights: [6]float64{8, 8, 10, 12, 28, 34}},
		Batsman: catalog.Persona{Name: "Tendulkar", Weights: [6]float64{1, 3, 5, 12, 34, 45}},
	}},
}

// Catalog assembles the built-in catalog. Each call returns a fresh copy.
func Catalog() *catalog.Catalog {
	c := &catalog.Catalog{
		Teams:        make(map[string]catalog.Team, len(Teams)),
		Difficulties: make(map[string]catalog.Strategy, len(Difficulties)),
		Questions:    append([]catalog.Question(nil), Questions...),
		Rules: catalog.Rules{
			WicketPenalty:       WicketPenalty,
			BallsPerOver:        BallsPerOver,
			ComputerCorrectRate: ComputerCorrectRate,
			MinOvers:            MinOvers,
			MaxOvers:            MaxOvers,
			DefaultOvers:        DefaultOvers,
			SecondsPerOver:      SecondsPerOver,
		},
	}

	for _, t := range Teams {
		c.Teams[t.ID] = t
		c.TeamOrder = append(c.TeamOrder, t.ID)
	}

	for _, d := range Difficulties {
		c.Difficulties[d.ID] = d.Strategy
		c.DifficultyOrder = append(c.DifficultyOrder, d.ID)
	}

	return c
}
