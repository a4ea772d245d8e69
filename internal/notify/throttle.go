package notify

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// Throttled bounds the rate of outbound sends so a burst of submissions
// cannot trip the provider's own limits. Waiting honours the context, so a
// caller with a deadline fails instead of queueing forever.
type Throttled struct {
	next    Sink
	limiter *rate.Limiter
}

func NewThrottled(next Sink, limit rate.Limit, burst int) *Throttled {
	return &Throttled{next: next, limiter: rate.NewLimiter(limit, burst)}
}

func (t *Throttled) Name() string {
	return t.next.Name()
}

func (t *Throttled) Send(ctx context.Context, msg Message) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s throttle: %w", t.next.Name(), err)
	}
	return t.next.Send(ctx, msg)
}
