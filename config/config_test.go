package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "EMAIL_USER", "EMAIL_PASS", "REDIS_ADDR", "MAIL_PROVIDER", "APP_ENV", "NODE_ENV", "CORS_ORIGINS"} {
		t.Setenv(k, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 3, cfg.RateLimit.Max)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, "smtp", cfg.Mail.Provider)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.False(t, cfg.Mail.Configured(), "mail without credentials is unconfigured")
	assert.Empty(t, cfg.Redis.Addr)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("EMAIL_USER", "me@example.com")
	t.Setenv("EMAIL_PASS", "secret")
	t.Setenv("CONTACT_EMAIL", "")
	t.Setenv("RATE_LIMIT_MAX", "5")
	t.Setenv("RATE_LIMIT_WINDOW", "1m")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("APP_ENV", "production")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, 5, cfg.RateLimit.Max)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
	assert.True(t, cfg.Mail.Configured())
	assert.Equal(t, "me@example.com", cfg.Mail.To, "recipient falls back to EMAIL_USER")
	assert.True(t, cfg.IsProduction())
}

func TestFromEnv_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX", "three")
	t.Setenv("MAIL_TIMEOUT", "soon")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.RateLimit.Max)
	assert.Equal(t, 10*time.Second, cfg.Mail.Timeout)
}

func TestValidate(t *testing.T) {
	t.Setenv("MAIL_PROVIDER", "carrier-pigeon")
	_, err := FromEnv()
	require.Error(t, err)

	t.Setenv("MAIL_PROVIDER", "ses")
	t.Setenv("RATE_LIMIT_MAX", "0")
	_, err = FromEnv()
	require.Error(t, err)
}

func TestMailConfigured_SES(t *testing.T) {
	m := MailConfig{Provider: "ses", From: "site@example.com", To: "me@example.com"}
	assert.True(t, m.Configured())

	m.From = ""
	assert.False(t, m.Configured())
}
