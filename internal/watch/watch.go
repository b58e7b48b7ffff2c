// Package watch runs a fetch on a fixed interval until its context ends.
package watch

import (
	"context"
	"time"
)

// Every calls fetch immediately and then once per interval, passing each
// result to apply. It returns ctx.Err() when ctx ends. A result that arrives
// after cancellation is dropped, and apply returning an error stops the loop.
func Every[T any](ctx context.Context, interval time.Duration, fetch func(context.Context) (T, error), apply func(T, error) error) error {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		v, err := fetch(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if aerr := apply(v, err); aerr != nil {
			return aerr
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
