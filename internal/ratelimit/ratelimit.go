// Package ratelimit throttles how fast the runner hands documents to an engine.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter paces document evaluation. The zero rate means unlimited.
type Limiter struct {
	limiter *rate.Limiter
}

// New returns a limiter admitting docsPerSecond documents per second with
// room for burst documents at once. A rate of 0 or less disables throttling.
func New(docsPerSecond float64, burst int) *Limiter {
	if burst < 1 {
		burst = 1
	}
	if docsPerSecond <= 0 {
		return &Limiter{limiter: rate.NewLimiter(rate.Inf, burst)}
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(docsPerSecond), burst)}
}

// Wait blocks until the next document may be evaluated or ctx is done.
// It reports ctx.Err() even on an unlimited limiter so a cancelled run stops
// between documents.
func (l *Limiter) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return l.limiter.Wait(ctx)
}

// Allow reports whether a document may be evaluated now without waiting.
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}

// Rate returns documents per second, or 0 when unlimited.
func (l *Limiter) Rate() float64 {
	limit := l.limiter.Limit()
	if limit == rate.Inf {
		return 0
	}
	return float64(limit)
}

// Burst returns how many documents may pass back to back.
func (l *Limiter) Burst() int {
	return l.limiter.Burst()
}
