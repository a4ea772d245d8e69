package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tsenadheera/portfolio/internal/contact/domain"
	"github.com/tsenadheera/portfolio/internal/logging"
	"github.com/tsenadheera/portfolio/internal/notify"
)

const defaultSendTimeout = 10 * time.Second

type Options struct {
	// To is the owner's address that receives submissions.
	To string
	// From is the envelope sender; sinks fall back to their own default.
	From string
	// SendTimeout bounds a single delivery attempt.
	SendTimeout time.Duration
	Now         func() time.Time
}

// ContactService validates submissions and forwards them to the sink.
type ContactService struct {
	sink notify.Sink
	opts Options
}

// NewContactService creates the service. A nil sink means mail is not
// configured: valid submissions are accepted and logged only.
func NewContactService(sink notify.Sink, opts Options) *ContactService {
	if opts.SendTimeout <= 0 {
		opts.SendTimeout = defaultSendTimeout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &ContactService{sink: sink, opts: opts}
}

// Configured reports whether submissions are delivered.
func (s *ContactService) Configured() bool {
	return s.sink != nil
}

// Submit validates sub and delivers it. Validation failures are returned as
// *domain.ValidationError, sink failures wrap domain.ErrDelivery.
func (s *ContactService) Submit(ctx context.Context, sub domain.Submission) error {
	if err := sub.Validate(); err != nil {
		return err
	}

	log := logging.FromContext(ctx).With(zap.String("submission_id", uuid.NewString()))

	if s.sink == nil {
		log.Info("Contact form submission (email not configured)",
			zap.String("name", sub.Name),
			zap.String("email", sub.Email),
			zap.String("subject", sub.Subject),
			zap.String("message", sub.Message),
			zap.Time("timestamp", s.opts.Now().UTC()),
		)
		return nil
	}

	msg, err := FormatMessage(sub, s.opts.To, s.opts.From)
	if err != nil {
		return err
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.opts.SendTimeout)
	defer cancel()

	start := s.opts.Now()
	if err := s.sink.Send(sendCtx, msg); err != nil {
		log.Error("Contact form delivery failed",
			zap.String("sink", s.sink.Name()),
			zap.Duration("elapsed", s.opts.Now().Sub(start)),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", domain.ErrDelivery, err)
	}

	log.Info("Contact form submission delivered",
		zap.String("sink", s.sink.Name()),
		zap.String("name", sub.Name),
		zap.String("email", sub.Email),
	)
	return nil
}
