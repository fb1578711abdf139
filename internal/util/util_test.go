package util

import (
	"context"
	"testing"
	"time"
)

func TestPlural(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want string
	}{
		{n: 0, want: "0 runs"},
		{n: 1, want: "1 run"},
		{n: 2, want: "2 runs"},
		{n: 15, want: "15 runs"},
	}

	for _, tt := range tests {
		if got := Plural(tt.n, "run", "runs"); got != tt.want {
			t.Errorf("expected %q got %q", tt.want, got)
		}
	}
}

func TestSleepStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	start := time.Now()
	if Sleep(ctx, time.Hour) {
		t.Fatalf("expected sleep to be interrupted")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("expected prompt return got %v", elapsed)
	}
}

func TestSleepElapses(t *testing.T) {
	t.Parallel()

	if !Sleep(context.Background(), time.Millisecond) {
		t.Errorf("expected sleep to elapse")
	}
	if !Sleep(context.Background(), 0) {
		t.Errorf("expected zero sleep to succeed")
	}
}
