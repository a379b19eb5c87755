package mirror

import (
	"context"
	"time"
)

// Pacer inserts a delay between consecutive per-catalog fetches so a long
// traversal stays under the upstream rate limit. Tests substitute NoPacer.
type Pacer interface {
	Pause(ctx context.Context) error
}

type fixedPacer struct {
	interval time.Duration
}

// FixedPacer pauses for a fixed interval, honoring context cancellation.
func FixedPacer(interval time.Duration) Pacer {
	return fixedPacer{interval: interval}
}

func (p fixedPacer) Pause(ctx context.Context) error {
	t := time.NewTimer(p.interval)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type noPacer struct{}

// NoPacer never pauses.
func NoPacer() Pacer { return noPacer{} }

func (noPacer) Pause(ctx context.Context) error { return nil }
