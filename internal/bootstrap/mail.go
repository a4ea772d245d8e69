package bootstrap

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/tsenadheera/portfolio/config"
	"github.com/tsenadheera/portfolio/internal/notify"
)

// BuildSink returns the configured notification sink wrapped in the outbound
// throttle, or nil when mail is not configured.
func BuildSink(ctx context.Context, cfg config.MailConfig) (notify.Sink, error) {
	if !cfg.Configured() {
		return nil, nil
	}

	var sink notify.Sink
	switch cfg.Provider {
	case "ses":
		s, err := notify.NewSESSink(ctx, cfg.AWSRegion, cfg.From)
		if err != nil {
			return nil, fmt.Errorf("ses sink: %w", err)
		}
		sink = s
	default:
		sink = notify.NewSMTPSink(notify.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.User,
			Password: cfg.Password,
		})
	}

	if cfg.RatePerMinute <= 0 {
		return sink, nil
	}
	return notify.NewThrottled(sink, rate.Limit(float64(cfg.RatePerMinute)/60), 1), nil
}
