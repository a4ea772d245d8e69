package jobs

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsenadheera/portfolio/internal/ratelimit"
)

type countingSweeper struct{ calls atomic.Int32 }

func (c *countingSweeper) Sweep() int {
	c.calls.Add(1)
	return 0
}

func TestAddSweep_InvalidSpec(t *testing.T) {
	s := NewScheduler(nil)
	assert.Error(t, s.AddSweep("every minute please", "bad", &countingSweeper{}))
}

func TestRun_SweepsUntilCancelled(t *testing.T) {
	s := NewScheduler(nil)
	sw := &countingSweeper{}
	require.NoError(t, s.AddSweep("@every 1s", "test", sw))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	assert.Eventually(t, func() bool { return sw.calls.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestSweep_MemoryStore(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	store := ratelimit.NewMemoryStore(func() time.Time { return now })

	_, _, err := store.Hit(context.Background(), "a", time.Minute)
	require.NoError(t, err)

	s := NewScheduler(nil)
	require.NoError(t, s.AddSweep(SweepSpec, "ratelimit", store))

	now = now.Add(2 * time.Minute)
	assert.Equal(t, 1, store.Sweep())
	assert.Zero(t, store.Len())
}
