// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	Port      string
	DBPath    string
	LogLevel  slog.Level
	Retention time.Duration

	// Reference viewport the animation plan is laid out for.
	ViewportWidth  float64
	ViewportHeight float64

	AdminUsername string
	AdminPassword string

	// Proxies whose X-Forwarded-For is believed. Empty trusts none.
	TrustedProxies []string

	SMTP SMTP
}

type SMTP struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

// Configured reports whether outgoing mail can be sent.
func (s SMTP) Configured() bool {
	return s.User != "" && s.Pass != ""
}

// Addr is the host:port of the mail server.
func (s SMTP) Addr() string {
	return s.Host + ":" + s.Port
}

// UsingDefaultAdmin is true when the development credentials are in effect.
func (c *Config) UsingDefaultAdmin() bool {
	return c.AdminUsername == defaultAdminUsername || c.AdminPassword == defaultAdminPassword
}

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// Load reads configuration from environment variables and returns a validated Config.
// Optional variables with defaults: PORT (8080), PORTFOLIO_DB_PATH (portfolio.db),
// PORTFOLIO_LOG_LEVEL (info), PORTFOLIO_RETENTION (8760h),
// PORTFOLIO_VIEWPORT_WIDTH (1440), PORTFOLIO_VIEWPORT_HEIGHT (900),
// ADMIN_USERNAME (admin), ADMIN_PASSWORD (admin123), SMTP_HOST (smtp.gmail.com),
// SMTP_PORT (587), TO_EMAIL (hello@gafarajao.com), PORTFOLIO_TRUSTED_PROXIES
// (none; comma-separated IPs or CIDRs). SMTP_USER and SMTP_PASS
// have no default; without them contact messages are stored but not mailed.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           envOr("PORT", "8080"),
		DBPath:         envOr("PORTFOLIO_DB_PATH", "portfolio.db"),
		Retention:      365 * 24 * time.Hour,
		ViewportWidth:  1440,
		ViewportHeight: 900,
		AdminUsername:  envOr("ADMIN_USERNAME", defaultAdminUsername),
		AdminPassword:  envOr("ADMIN_PASSWORD", defaultAdminPassword),
		SMTP: SMTP{
			Host: envOr("SMTP_HOST", "smtp.gmail.com"),
			Port: envOr("SMTP_PORT", "587"),
			User: os.Getenv("SMTP_USER"),
			Pass: os.Getenv("SMTP_PASS"),
			To:   envOr("TO_EMAIL", "hello@gafarajao.com"),
		},
	}

	if v, ok := os.LookupEnv("PORTFOLIO_LOG_LEVEL"); ok {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("PORTFOLIO_LOG_LEVEL has invalid level %q: %w", v, err)
		}
	}

	if v, ok := os.LookupEnv("PORTFOLIO_RETENTION"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("PORTFOLIO_RETENTION has invalid duration %q: %w", v, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("PORTFOLIO_RETENTION must be positive, got %s", parsed)
		}
		cfg.Retention = parsed
	}

	cfg.TrustedProxies = envList("PORTFOLIO_TRUSTED_PROXIES")

	var err error
	if cfg.ViewportWidth, err = envFloat("PORTFOLIO_VIEWPORT_WIDTH", cfg.ViewportWidth); err != nil {
		return nil, err
	}
	if cfg.ViewportHeight, err = envFloat("PORTFOLIO_VIEWPORT_HEIGHT", cfg.ViewportHeight); err != nil {
		return nil, err
	}

	return cfg, nil
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func envFloat(key string, def float64) (float64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s has invalid number %q: %w", key, v, err)
	}
	if f <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %v", key, f)
	}
	return f, nil
}
