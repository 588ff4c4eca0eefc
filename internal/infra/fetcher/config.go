package fetcher

import (
	"fmt"
	"time"

	"article-summarizer/pkg/config"
)

// Config controls outbound article fetching.
//
// The security knobs exist because the fetch target is user supplied:
// DenyPrivateIPs blocks SSRF, MaxBodySize bounds memory, MaxRedirects bounds
// redirect chains, and Timeout bounds how long one request may hold a worker.
type Config struct {
	// Timeout is the per-request deadline.
	Timeout time.Duration

	// MaxBodySize is the maximum response body size in bytes. Enforced while
	// reading, not from the Content-Length header.
	MaxBodySize int64

	// MaxRedirects caps the redirect chain; every hop is re-validated.
	MaxRedirects int

	// DenyPrivateIPs rejects URLs resolving to loopback, private, or
	// link-local addresses. Always true in production.
	DenyPrivateIPs bool

	// RatePerSecond and Burst bound outbound requests across all callers so a
	// burst of summarize requests cannot hammer a target site.
	RatePerSecond float64
	Burst         int

	// UserAgent identifies the fetcher to target sites.
	UserAgent string
}

// DefaultConfig returns production-ready fetch settings.
func DefaultConfig() Config {
	return Config{
		Timeout:        10 * time.Second,
		MaxBodySize:    10 * 1024 * 1024,
		MaxRedirects:   5,
		DenyPrivateIPs: true,
		RatePerSecond:  5,
		Burst:          10,
		UserAgent:      "ArticleSummarizerBot/1.0",
	}
}

// LoadConfigFromEnv reads the FETCH_* environment variables on top of the
// defaults and validates the result.
func LoadConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	cfg.Timeout = config.GetEnvDuration("FETCH_TIMEOUT", cfg.Timeout)
	cfg.MaxBodySize = config.GetEnvInt64("FETCH_MAX_BODY_SIZE", cfg.MaxBodySize)
	cfg.MaxRedirects = config.GetEnvInt("FETCH_MAX_REDIRECTS", cfg.MaxRedirects)
	cfg.DenyPrivateIPs = config.GetEnvBool("FETCH_DENY_PRIVATE_IPS", cfg.DenyPrivateIPs)
	cfg.RatePerSecond = float64(config.GetEnvInt("FETCH_RATE_PER_SECOND", int(cfg.RatePerSecond)))
	cfg.Burst = config.GetEnvInt("FETCH_BURST", cfg.Burst)
	cfg.UserAgent = config.GetEnvString("FETCH_USER_AGENT", cfg.UserAgent)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("fetch configuration: %w", err)
	}
	return cfg, nil
}

// Validate rejects settings that would be unsafe or nonsensical at runtime.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}

	minBody := int64(1024)
	maxBody := int64(100 * 1024 * 1024)
	if c.MaxBodySize < minBody || c.MaxBodySize > maxBody {
		return fmt.Errorf("max body size must be between %d and %d bytes, got %d", minBody, maxBody, c.MaxBodySize)
	}

	if c.MaxRedirects < 0 || c.MaxRedirects > 10 {
		return fmt.Errorf("max redirects must be between 0 and 10, got %d", c.MaxRedirects)
	}

	if c.RatePerSecond <= 0 {
		return fmt.Errorf("rate per second must be positive, got %v", c.RatePerSecond)
	}
	if c.Burst < 1 {
		return fmt.Errorf("burst must be at least 1, got %d", c.Burst)
	}

	if c.UserAgent == "" {
		return fmt.Errorf("user agent must not be empty")
	}

	return nil
}
