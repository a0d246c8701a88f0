package clock

import (
	"context"
	"time"
)

// Sleep blocks for d on the given clock or until ctx is done.
func Sleep(ctx context.Context, c Clocker, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	done := make(chan struct{})
	t := c.AfterFunc(d, func() { close(done) })

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		t.Stop()
		return ctx.Err()
	}
}
