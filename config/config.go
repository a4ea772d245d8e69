package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Mail      MailConfig
	App       AppConfig
}

type ServerConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	StaticDir      string
	CORSOrigins    []string
	TrustedProxies []string
}

// RedisConfig is optional; an empty Addr selects the in-process rate-limit store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

type MailConfig struct {
	Provider      string
	User          string
	Password      string
	SMTPHost      string
	SMTPPort      int
	To            string
	From          string
	AWSRegion     string
	Timeout       time.Duration
	RatePerMinute int
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
	ServiceName string
	ContentPath string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return FromEnv()
}

// FromEnv builds the configuration from the process environment only.
func FromEnv() (*Config, error) {
	user := getEnv("EMAIL_USER", "")

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "3000"),
			ReadTimeout:    getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			StaticDir:      getEnv("STATIC_DIR", "public"),
			CORSOrigins:    getEnvAsList("CORS_ORIGINS", []string{"*"}),
			TrustedProxies: getEnvAsList("TRUSTED_PROXIES", nil),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		RateLimit: RateLimitConfig{
			Max:    getEnvAsInt("RATE_LIMIT_MAX", 3),
			Window: getEnvAsDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
		},
		Mail: MailConfig{
			Provider:      strings.ToLower(getEnv("MAIL_PROVIDER", "smtp")),
			User:          user,
			Password:      getEnv("EMAIL_PASS", ""),
			SMTPHost:      getEnv("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:      getEnvAsInt("SMTP_PORT", 587),
			To:            getEnv("CONTACT_EMAIL", user),
			From:          getEnv("MAIL_FROM", user),
			AWSRegion:     getEnv("AWS_REGION", ""),
			Timeout:       getEnvAsDuration("MAIL_TIMEOUT", 10*time.Second),
			RatePerMinute: getEnvAsInt("MAIL_RATE_PER_MINUTE", 30),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", getEnv("NODE_ENV", "development")),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			ServiceName: getEnv("SERVICE_NAME", "portfolio"),
			ContentPath: getEnv("CONTENT_PATH", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.RateLimit.Max < 1 {
		return fmt.Errorf("RATE_LIMIT_MAX must be at least 1")
	}

	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}

	switch c.Mail.Provider {
	case "smtp", "ses":
	default:
		return fmt.Errorf("MAIL_PROVIDER must be smtp or ses, got %q", c.Mail.Provider)
	}

	return nil
}

// Configured reports whether a notification sink should be built. Missing
// credentials are not an error: submissions are then accepted and logged.
func (m MailConfig) Configured() bool {
	switch m.Provider {
	case "ses":
		return m.From != "" && m.To != ""
	default:
		return m.User != "" && m.Password != ""
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
