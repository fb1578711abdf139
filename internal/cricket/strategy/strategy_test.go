package strategy

import (
	"errors"
	"math"
	"testing"

	"github.com/bloops-games/quizcricket/internal/cricket/catalog"
	"github.com/bloops-games/quizcricket/internal/cricket/resource"
	"github.com/bloops-games/quizcricket/internal/rng"
)

var (
	fullSet       = catalog.ScoringOptions[:]
	restrictedSet = catalog.RestrictedOptions[:]
)

func TestChooseStaysInDomain(t *testing.T) {
	t.Parallel()

	cat := resource.Catalog()
	engine := New(cat.Difficulties, rng.New(7))

	allowed := map[int]bool{0: true, 1: true, 2: true, 3: true, 4: true, 6: true}
	for _, difficulty := range cat.DifficultyOrder {
		for _, role := range []Role{RoleBatting, RoleBowling} {
			for i := 0; i < 500; i++ {
				n, err := engine.Choose(difficulty, role, fullSet)
				if err != nil {
					t.Fatalf("choose: %v", err)
				}
				if !allowed[n] {
					t.Fatalf("%s/%s: %d outside scoring options", difficulty, role, n)
				}

				n, err = engine.Choose(difficulty, role, restrictedSet)
				if err != nil {
					t.Fatalf("choose: %v", err)
				}
				if n != 0 && n != 1 {
					t.Fatalf("%s/%s: restricted domain returned %d", difficulty, role, n)
				}
			}
		}
	}
}

func TestChooseRestrictedIsCoin(t *testing.T) {
	t.Parallel()

	engine := New(resource.Catalog().Difficulties, rng.NewSequence(0.49, 0.5))
	if n, _ := engine.Choose("easy", RoleBatting, restrictedSet); n != 0 {
		t.Errorf("expected 0 got %d", n)
	}
	if n, _ := engine.Choose("easy", RoleBatting, restrictedSet); n != 1 {
		t.Errorf("expected 1 got %d", n)
	}
}

func TestChooseWeighted(t *testing.T) {
	t.Parallel()

	// easy batsman: 5, 8, 13, 20, 28, 26 (cumulative 5, 13, 26, 46, 74, 100)
	tests := []struct {
		name string
		u    float64
		want int
	}{
		{name: "zero draw picks first", u: 0, want: 0},
		{name: "boundary is inclusive", u: 0.05, want: 0},
		{name: "two", u: 0.2, want: 2},
		{name: "four", u: 0.6, want: 4},
		{name: "six", u: 0.99, want: 6},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			engine := New(resource.Catalog().Difficulties, rng.NewSequence(tt.u))
			n, err := engine.Choose("easy", RoleBatting, fullSet)
			if err != nil {
				t.Fatalf("choose: %v", err)
			}
			if n != tt.want {
				t.Errorf("expected %d got %d", tt.want, n)
			}
		})
	}
}

func TestPickWeightedFallback(t *testing.T) {
	t.Parallel()

	// u slightly above 1 mimics rounding that never brings the remainder to zero.
	if idx := pickWeighted([]float64{1, 1, 1, 1, 1, 1}, math.Nextafter(1, 2)); idx != 5 {
		t.Errorf("expected fallback to last entry, got %d", idx)
	}

	if idx := pickWeighted([]float64{0, 0, 5, 0, 0, 0}, 0.5); idx != 2 {
		t.Errorf("expected only weighted entry, got %d", idx)
	}
}

func TestUnknownDifficulty(t *testing.T) {
	t.Parallel()

	engine := New(resource.Catalog().Difficulties, rng.New(1))
	if _, err := engine.Choose("impossible", RoleBowling, fullSet); !errors.Is(err, ErrUnknownDifficulty) {
		t.Fatalf("expected %v got %v", ErrUnknownDifficulty, err)
	}

	p, err := engine.Persona("hard", RoleBatting)
	if err != nil || p.Name != "Bradman" {
		t.Errorf("expected Bradman got %#v (%v)", p, err)
	}
}
