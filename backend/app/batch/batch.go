package batch

import (
	"context"
	"time"
)

// Tally is the aggregate outcome of a sequential batch.
type Tally struct {
	Succeeded int
	Failed    int
	Errors    map[string]string // item -> failure text
}

// Run executes step for each item strictly one at a time, which is the
// invariant the single-in-flight device transport requires. A step failure is
// recorded and the batch continues; only ctx cancellation stops it early.
// delay, when non-zero, is slept between steps as a throttle.
func Run(ctx context.Context, items []string, delay time.Duration, step func(ctx context.Context, item string) error) Tally {
	t := Tally{Errors: map[string]string{}}
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			t.Failed += len(items) - i
			for _, rest := range items[i:] {
				t.Errors[rest] = "canceled"
			}
			return t
		}
		if err := step(ctx, item); err != nil {
			t.Failed++
			t.Errors[item] = err.Error()
		} else {
			t.Succeeded++
		}
		if delay > 0 && i < len(items)-1 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
			}
		}
	}
	return t
}
