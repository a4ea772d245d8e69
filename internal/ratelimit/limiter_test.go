package ratelimit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func TestLimiter_FourthHitInWindowIsRejected(t *testing.T) {
	clock := newClock()
	l := New(NewMemoryStore(clock.Now), 3, 15*time.Minute, "contact:")
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		d, err := l.Allow(ctx, "203.0.113.7")
		require.NoError(t, err)
		assert.True(t, d.Allowed, "hit %d", i)
		assert.Equal(t, 3-i, d.Remaining)
	}

	clock.Advance(14 * time.Minute)
	d, err := l.Allow(ctx, "203.0.113.7")
	require.ErrorIs(t, err, ErrLimited)
	assert.False(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)
	assert.Equal(t, time.Minute, d.ResetIn)
}

func TestLimiter_WindowResets(t *testing.T) {
	clock := newClock()
	l := New(NewMemoryStore(clock.Now), 3, 15*time.Minute, "")
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, _ = l.Allow(ctx, "a")
	}
	clock.Advance(15 * time.Minute)

	d, err := l.Allow(ctx, "a")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 2, d.Remaining)
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	l := New(NewMemoryStore(nil), 1, time.Minute, "")
	ctx := context.Background()

	a, _ := l.Allow(ctx, "a")
	b, _ := l.Allow(ctx, "b")
	assert.True(t, a.Allowed)
	assert.True(t, b.Allowed)

	a, _ = l.Allow(ctx, "a")
	assert.False(t, a.Allowed)
}

func TestLimiter_ConcurrentHitsAreCounted(t *testing.T) {
	l := New(NewMemoryStore(nil), 3, time.Minute, "")
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := l.Allow(ctx, "same-client")
			if err == nil && d.Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 3, allowed)
}

type brokenStore struct{}

func (brokenStore) Hit(context.Context, string, time.Duration) (int, time.Duration, error) {
	return 0, 0, errors.New("connection refused")
}

func (brokenStore) Name() string { return "broken" }

func TestLimiter_StoreError(t *testing.T) {
	l := New(brokenStore{}, 3, time.Minute, "")
	_, err := l.Allow(context.Background(), "a")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrLimited)
	assert.Contains(t, err.Error(), "broken")
}

func TestMemoryStore_Sweep(t *testing.T) {
	clock := newClock()
	s := NewMemoryStore(clock.Now)
	ctx := context.Background()

	_, _, _ = s.Hit(ctx, "old", time.Minute)
	clock.Advance(30 * time.Second)
	_, _, _ = s.Hit(ctx, "new", time.Minute)
	clock.Advance(45 * time.Second)

	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Len())
}
