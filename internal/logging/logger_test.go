package logging

import (
	"context"
	"testing"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	for _, debug := range []bool{true, false} {
		if logger := NewLogger(debug); logger == nil {
			t.Fatalf("logger cannot be nil, debug: %v", debug)
		}
	}
}

func TestDefaultLogger(t *testing.T) {
	t.Parallel()

	logger1 := DefaultLogger()
	if logger1 == nil {
		t.Fatal("logger cannot be nil")
	}

	logger2 := DefaultLogger()
	if logger1 != logger2 {
		t.Errorf("expected %#v got %#v", logger1, logger2)
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if logger := FromContext(ctx); logger != DefaultLogger() {
		t.Errorf("expected fallback to the default logger, got %#v", logger)
	}

	named := NewLogger(true).Named("match")
	ctx = WithLogger(ctx, named)

	if logger := FromContext(ctx); logger != named {
		t.Errorf("expected %#v got %#v", named, logger)
	}
}
