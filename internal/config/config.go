package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Addr       string `env:"ADDR" envDefault:":8080"`
	APIBaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:3000"`
	SiteTitle  string `env:"SITE_TITLE" envDefault:"Portfolio"`

	SessionSecret        string `env:"SESSION_SECRET,required"`
	SessionEncryptionKey string `env:"SESSION_ENCRYPTION_KEY"`
	CookieSecure         bool   `env:"COOKIE_SECURE" envDefault:"false"`

	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"10s"`

	UploadMaxBytes     int64    `env:"UPLOAD_MAX_BYTES" envDefault:"10485760"`
	UploadAllowedTypes []string `env:"UPLOAD_ALLOWED_TYPES" envSeparator:"," envDefault:"image/jpeg,image/png,image/gif,image/webp,image/svg+xml,application/pdf"`
	UploadDir          string   `env:"UPLOAD_DIR"`

	TracingEnabled     bool   `env:"TRACING_ENABLED" envDefault:"false"`
	TracingServiceName string `env:"TRACING_SERVICE_NAME" envDefault:"portfolio"`
	TracingZipkinURL   string `env:"TRACING_ZIPKIN_URL" envDefault:"http://localhost:9411/api/v2/spans"`
}

// New loads a .env file when present and parses the environment into a Config.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, relying on environment variables")
	}
	return Parse()
}

// Parse reads the process environment without touching .env files.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	if n := len(cfg.SessionEncryptionKey); n != 0 && n != 16 && n != 24 && n != 32 {
		return nil, fmt.Errorf("SESSION_ENCRYPTION_KEY must be 16, 24 or 32 bytes, got %d", n)
	}
	return &cfg, nil
}
