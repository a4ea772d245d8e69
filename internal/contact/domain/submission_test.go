package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimitedMessage(t *testing.T) {
	tests := []struct {
		window time.Duration
		want   string
	}{
		{15 * time.Minute, "Please try again in 15 minutes."},
		{time.Minute, "Please try again in 1 minute."},
		{90 * time.Second, "Please try again in 2 minutes."},
		{10 * time.Second, "Please try again in 1 minute."},
		{time.Hour, "Please try again in 1 hour."},
		{3 * time.Hour, "Please try again in 3 hours."},
		{90 * time.Minute, "Please try again in 90 minutes."},
	}
	for _, tt := range tests {
		t.Run(tt.window.String(), func(t *testing.T) {
			msg := RateLimitedMessage(tt.window)
			assert.Equal(t, "Too many contact form submissions. "+tt.want, msg)
		})
	}
}
