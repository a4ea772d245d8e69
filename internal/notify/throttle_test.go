package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type countingSink struct {
	mu   sync.Mutex
	sent int
}

func (c *countingSink) Send(context.Context, Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent++
	return nil
}

func (c *countingSink) Name() string { return "counting" }

func TestThrottled_BurstThenDeadline(t *testing.T) {
	next := &countingSink{}
	sink := NewThrottled(next, rate.Every(time.Hour), 2)
	ctx := context.Background()

	require.NoError(t, sink.Send(ctx, sampleMessage()))
	require.NoError(t, sink.Send(ctx, sampleMessage()))

	short, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	err := sink.Send(short, sampleMessage())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "counting throttle")
	assert.Equal(t, 2, next.sent)
	assert.Equal(t, "counting", sink.Name())
}
