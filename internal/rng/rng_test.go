package rng

import "testing"

func TestSeededSourceDeterministic(t *testing.T) {
	t.Parallel()

	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		va, vb := a.Float64(), b.Float64()
		if va != vb {
			t.Fatalf("draw %d: expected %v got %v", i, va, vb)
		}
		if va < 0 || va >= 1 {
			t.Fatalf("draw %d out of range: %v", i, va)
		}
	}
}

func TestIntn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    float64
		n    int
		want int
	}{
		{name: "zero", v: 0, n: 4, want: 0},
		{name: "middle", v: 0.5, n: 4, want: 2},
		{name: "top", v: 0.9999, n: 4, want: 3},
		{name: "clamped", v: 1, n: 4, want: 3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Intn(NewSequence(tt.v), tt.n); got != tt.want {
				t.Errorf("expected %d got %d", tt.want, got)
			}
		})
	}
}

func TestSequenceWraps(t *testing.T) {
	t.Parallel()

	seq := NewSequence(0.1, 0.2)
	seq.Push(0.3)
	want := []float64{0.1, 0.2, 0.3, 0.1}
	for i, w := range want {
		if got := seq.Float64(); got != w {
			t.Fatalf("draw %d: expected %v got %v", i, w, got)
		}
	}

	if seq.Consumed() != len(want) {
		t.Errorf("expected %d consumed got %d", len(want), seq.Consumed())
	}

	if !Chance(NewSequence(0.65), 0.66) || Chance(NewSequence(0.66), 0.66) {
		t.Error("chance must be strict below p")
	}
}
