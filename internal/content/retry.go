package content

import (
	"context"
	"math/rand/v2"
	"time"
)

// MaxRetries caps the number of extra attempts after a transport failure.
const MaxRetries = 5

// shouldRetry reports whether a failed transport call is worth another attempt.
// Absent resources and undecodable bodies never reach this point.
func shouldRetry(ctx context.Context, err error, attempt, limit int) bool {
	if err == nil || attempt >= limit {
		return false
	}
	return ctx.Err() == nil
}

// Backoff returns a duration for attempt n (0-indexed) with jitter.
func Backoff(attempt int) time.Duration {
	base := time.Duration(1<<uint(attempt)) * time.Second
	if base > 30*time.Second {
		base = 30 * time.Second
	}
	jitter := time.Duration(rand.Int64N(int64(base) / 2))
	return base + jitter
}

// sleep waits for d or until ctx is done, reporting whether the full wait elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
