package rules

import (
	"reflect"
	"testing"
)

func TestResolveDelivery(t *testing.T) {
	t.Parallel()

	full := []int{0, 1, 2, 3, 4, 6}
	restricted := []int{0, 1}

	tests := []struct {
		name           string
		batting        bool
		bowling        bool
		wantNumbers    []int
		wantNoBall     bool
		wantRestricted bool
	}{
		{name: "batting wrong bowling right", batting: false, bowling: true, wantNumbers: restricted, wantRestricted: true},
		{name: "batting right bowling wrong", batting: true, bowling: false, wantNumbers: full, wantNoBall: true},
		{name: "both wrong", batting: false, bowling: false, wantNumbers: restricted, wantRestricted: true},
		{name: "both right", batting: true, bowling: true, wantNumbers: full},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ResolveDelivery(tt.batting, tt.bowling)
			if !reflect.DeepEqual(got.Numbers, tt.wantNumbers) {
				t.Errorf("expected %#v got %#v", tt.wantNumbers, got.Numbers)
			}
			if got.NoBall != tt.wantNoBall {
				t.Errorf("expected no-ball %v got %v", tt.wantNoBall, got.NoBall)
			}
			if got.Restricted() != tt.wantRestricted {
				t.Errorf("expected restricted %v got %v", tt.wantRestricted, got.Restricted())
			}
		})
	}
}

func TestResolveDeliveryReturnsFreshSlices(t *testing.T) {
	t.Parallel()

	d := ResolveDelivery(true, true)
	d.Numbers[0] = 99

	if again := ResolveDelivery(true, true); again.Numbers[0] != 0 {
		t.Fatalf("delivery numbers share storage: %#v", again.Numbers)
	}
}

func TestResolveBall(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		striker    int
		nonStriker int
		noBall     bool
		runs       int
		want       Outcome
	}{
		{
			name: "wicket floors at zero", striker: 3, nonStriker: 3, runs: 10,
			want: Outcome{RunsDelta: -10, Wicket: true, NewRuns: 0},
		},
		{
			name: "wicket full penalty", striker: 6, nonStriker: 6, runs: 40,
			want: Outcome{RunsDelta: -15, Wicket: true, NewRuns: 25},
		},
		{
			name: "wicket at zero", striker: 0, nonStriker: 0, runs: 0,
			want: Outcome{Wicket: true},
		},
		{
			name: "no-ball survives", striker: 2, nonStriker: 2, noBall: true, runs: 17,
			want: Outcome{NoBallSurvived: true, NewRuns: 17},
		},
		{
			name: "four scored", striker: 4, nonStriker: 1, runs: 20,
			want: Outcome{RunsDelta: 4, Scored: 4, NewRuns: 24},
		},
		{
			name: "no-ball still scores", striker: 6, nonStriker: 0, noBall: true, runs: 0,
			want: Outcome{RunsDelta: 6, Scored: 6, NewRuns: 6},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ResolveBall(tt.striker, tt.nonStriker, tt.noBall, tt.runs, 15); got != tt.want {
				t.Errorf("expected %#v got %#v", tt.want, got)
			}
		})
	}

	if !ResolveBall(6, 1, false, 0, 15).Six() {
		t.Error("expected six flag")
	}
}

func TestAllowed(t *testing.T) {
	t.Parallel()

	if !Allowed(RestrictedNumbers(), 1) || Allowed(RestrictedNumbers(), 4) {
		t.Error("restricted set must admit 0 and 1 only")
	}
	if !Allowed(FullNumbers(), 6) || Allowed(FullNumbers(), 5) {
		t.Error("full set must admit scoring options only")
	}
}
