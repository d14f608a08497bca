package capture

import (
	"context"
	"time"
)

const (
	// DefaultCountdown is the number the countdown starts from.
	DefaultCountdown = 3

	// DefaultTickInterval is the time between two countdown ticks.
	DefaultTickInterval = time.Second
)

// Countdown counts down from `from` to 1, calling tick with each number and
// waiting interval after it. It returns once the count reaches zero or ctx
// is done, whichever comes first.
//
// A non-positive from returns immediately. tick may be nil.
func Countdown(ctx context.Context, from int, interval time.Duration, tick func(n int)) error {
	if from <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(interval)
	defer timer.Stop()

	for n := from; n > 0; n-- {
		if tick != nil {
			tick(n)
		}
		if n < from {
			timer.Reset(interval)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return nil
}
