package util

import (
	"context"
	"strconv"
	"time"
)

// Sleep waits for t or until ctx is done, reporting whether the full wait elapsed.
func Sleep(ctx context.Context, t time.Duration) bool {
	if t <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(t)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// Plural formats a count with the singular or plural noun: "1 run", "0 runs".
func Plural(number int, one, many string) string {
	if number == 1 || number == -1 {
		return strconv.Itoa(number) + " " + one
	}

	return strconv.Itoa(number) + " " + many
}
