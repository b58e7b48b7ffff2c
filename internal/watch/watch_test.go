package watch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestEveryRepeatsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var fetched, applied atomic.Int32

	errc := make(chan error, 1)
	go func() {
		errc <- Every(ctx, 5*time.Millisecond,
			func(context.Context) (int, error) { return int(fetched.Add(1)), nil },
			func(n int, err error) error {
				if applied.Add(1) >= 3 {
					cancel()
				}
				return nil
			})
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("loop did not stop")
	}
	if applied.Load() != 3 {
		t.Fatalf("expected 3 applies, got %d", applied.Load())
	}
}

func TestEveryDropsResultAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var applied atomic.Int32
	err := Every(ctx, time.Hour,
		func(context.Context) (string, error) {
			cancel()
			return "late", nil
		},
		func(string, error) error {
			applied.Add(1)
			return nil
		})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if applied.Load() != 0 {
		t.Fatalf("result applied after cancellation")
	}
}

func TestEveryStopsOnApplyError(t *testing.T) {
	stop := errors.New("socket closed")
	err := Every(context.Background(), time.Millisecond,
		func(context.Context) (int, error) { return 0, errors.New("fetch failed") },
		func(_ int, ferr error) error {
			if ferr == nil {
				t.Fatalf("expected fetch error passed to apply")
			}
			return stop
		})
	if !errors.Is(err, stop) {
		t.Fatalf("expected apply error, got %v", err)
	}
}
