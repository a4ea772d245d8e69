// Package jobs runs periodic housekeeping on a cron schedule.
package jobs

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SweepSpec runs the limiter sweep once a minute.
const SweepSpec = "0 * * * * *"

// Sweeper drops expired entries and reports how many were removed.
type Sweeper interface {
	Sweep() int
}

type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

func NewScheduler(logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:   cron.New(cron.WithSeconds()),
		logger: logger,
	}
}

// AddSweep registers a sweep of s. spec uses the six-field (seconds) format
// or a descriptor such as "@every 30s".
func (s *Scheduler) AddSweep(spec, name string, sw Sweeper) error {
	_, err := s.cron.AddFunc(spec, func() {
		if n := sw.Sweep(); n > 0 {
			s.logger.Debug("swept expired entries", zap.String("job", name), zap.Int("removed", n))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to create cron job %s: %w", name, err)
	}
	return nil
}

// Run starts the scheduler and blocks until ctx is done, then waits for
// running jobs to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	s.cron.Start()
	s.logger.Info("cron scheduler started", zap.Int("jobs", len(s.cron.Entries())))

	<-ctx.Done()
	<-s.cron.Stop().Done()
	s.logger.Info("cron scheduler stopped")
	return nil
}
