package capture

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"
)

func TestCountdownTicks(t *testing.T) {
	var ticks []int
	err := Countdown(context.Background(), 3, time.Millisecond, func(n int) {
		ticks = append(ticks, n)
	})
	if err != nil {
		t.Fatalf("Countdown() error = %v", err)
	}
	if want := []int{3, 2, 1}; !slices.Equal(ticks, want) {
		t.Errorf("ticks = %v, want %v", ticks, want)
	}
}

func TestCountdownWaits(t *testing.T) {
	start := time.Now()
	if err := Countdown(context.Background(), 2, 10*time.Millisecond, nil); err != nil {
		t.Fatalf("Countdown() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("countdown took %v, want at least 20ms", elapsed)
	}
}

func TestCountdownCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var ticks []int
	err := Countdown(ctx, 3, time.Hour, func(n int) {
		ticks = append(ticks, n)
		cancel()
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Countdown() error = %v, want context.Canceled", err)
	}
	if len(ticks) != 1 {
		t.Errorf("ticks = %v, want only the first", ticks)
	}
}

func TestCountdownZero(t *testing.T) {
	called := false
	if err := Countdown(context.Background(), 0, time.Hour, func(int) { called = true }); err != nil {
		t.Fatalf("Countdown() error = %v", err)
	}
	if called {
		t.Error("tick called for a zero countdown")
	}
}
