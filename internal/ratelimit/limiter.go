// Package ratelimit counts requests per client in fixed windows.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrLimited is returned when a key has exhausted its window.
var ErrLimited = errors.New("rate limit exceeded")

// Store increments the hit counter of a key. The first hit of a window
// starts the window; the counter and its expiry are updated atomically.
type Store interface {
	Hit(ctx context.Context, key string, window time.Duration) (count int, resetIn time.Duration, err error)
	Name() string
}

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetIn   time.Duration
}

// Limiter allows at most Max hits per key per Window.
type Limiter struct {
	store  Store
	max    int
	window time.Duration
	prefix string
}

func New(store Store, max int, window time.Duration, prefix string) *Limiter {
	return &Limiter{store: store, max: max, window: window, prefix: prefix}
}

// Allow records a hit for key. Over the limit it returns the decision
// together with ErrLimited. Any other error is a store failure and leaves the
// decision to the caller.
func (l *Limiter) Allow(ctx context.Context, key string) (Decision, error) {
	count, resetIn, err := l.store.Hit(ctx, l.prefix+key, l.window)
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit store %s: %w", l.store.Name(), err)
	}

	remaining := l.max - count
	if remaining < 0 {
		remaining = 0
	}
	d := Decision{
		Allowed:   count <= l.max,
		Limit:     l.max,
		Remaining: remaining,
		ResetIn:   resetIn,
	}
	if !d.Allowed {
		return d, ErrLimited
	}
	return d, nil
}

func (l *Limiter) Window() time.Duration {
	return l.window
}

func (l *Limiter) StoreName() string {
	return l.store.Name()
}
