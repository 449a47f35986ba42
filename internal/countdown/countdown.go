// Package countdown renders a best-effort per-tick countdown for timed
// sessions. How many ticks actually render has no bearing on what gets
// recorded; callers record from the requested duration.
package countdown

import (
	"context"
	"time"
)

// Run calls onTick with the remaining count, from seconds down to 1, waiting
// one interval after each call. It returns true when every tick was shown
// and false with the context error when ctx ends first.
func Run(ctx context.Context, seconds int, interval time.Duration, onTick func(remaining int)) (bool, error) {
	if seconds <= 0 {
		return true, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for remaining := seconds; remaining > 0; remaining-- {
		if onTick != nil {
			onTick(remaining)
		}
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-ticker.C:
		}
	}
	return true, nil
}
