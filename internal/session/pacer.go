package session

import (
	"context"
	"time"
)

// DefaultRevealDelay is the minimum time between a response arriving and the
// gifts being shown.
const DefaultRevealDelay = 1500 * time.Millisecond

// Pacer gates the reveal of generated gifts.
type Pacer interface {
	// Pace returns once the reveal may happen. It returns ctx's error when
	// the wait was cut short; the gifts are revealed either way.
	Pace(ctx context.Context) error
}

// DelayPacer waits a fixed duration.
type DelayPacer time.Duration

// Pace sleeps for at least the configured duration.
func (d DelayPacer) Pace(ctx context.Context) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(time.Duration(d))
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NoPacer reveals immediately.
type NoPacer struct{}

func (NoPacer) Pace(context.Context) error { return nil }
