package ratelimiter

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter paces outbound webhook calls with a token bucket. There is one
// external endpoint, so one limiter covers every dispatch. Burst is 1:
// calls are spaced at the steady rate with no saved-up burst above it.
type Limiter struct {
	l *rate.Limiter
}

// New creates a Limiter allowing ratePerSec calls per second.
func New(ratePerSec int) *Limiter {
	return &Limiter{l: rate.NewLimiter(rate.Limit(ratePerSec), 1)}
}

// Wait blocks until the limiter grants a token. Called immediately before
// each webhook call. Returns a non-nil error only if ctx is cancelled
// while waiting.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.l.Wait(ctx)
}
