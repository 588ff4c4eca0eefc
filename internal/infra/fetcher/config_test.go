package fetcher_test

import (
	"testing"
	"time"

	"article-summarizer/internal/infra/fetcher"
)

func TestDefaultConfig(t *testing.T) {
	cfg := fetcher.DefaultConfig()

	if cfg.Timeout != 10*time.Second {
		t.Errorf("expected Timeout=10s, got %v", cfg.Timeout)
	}
	if cfg.MaxBodySize != 10*1024*1024 {
		t.Errorf("expected MaxBodySize=10MB, got %d", cfg.MaxBodySize)
	}
	if cfg.MaxRedirects != 5 {
		t.Errorf("expected MaxRedirects=5, got %d", cfg.MaxRedirects)
	}
	if !cfg.DenyPrivateIPs {
		t.Error("expected DenyPrivateIPs=true by default")
	}
	if cfg.RatePerSecond <= 0 || cfg.Burst < 1 {
		t.Errorf("expected positive rate limit defaults, got rate=%v burst=%d", cfg.RatePerSecond, cfg.Burst)
	}
	if cfg.UserAgent == "" {
		t.Error("expected non-empty default UserAgent")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid, got error: %v", err)
	}
}

func TestConfigValidate_InvalidTimeout(t *testing.T) {
	for _, timeout := range []time.Duration{0, -1 * time.Second} {
		cfg := fetcher.DefaultConfig()
		cfg.Timeout = timeout
		if err := cfg.Validate(); err == nil {
			t.Errorf("expected validation error for timeout=%v", timeout)
		}
	}
}

func TestConfigValidate_MaxBodySizeBounds(t *testing.T) {
	tests := []struct {
		name       string
		size       int64
		shouldFail bool
	}{
		{"zero size", 0, true},
		{"below minimum", 500, true},
		{"at minimum boundary", 1024, false},
		{"at maximum boundary", 100 * 1024 * 1024, false},
		{"above maximum", 200 * 1024 * 1024, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := fetcher.DefaultConfig()
			cfg.MaxBodySize = tt.size
			err := cfg.Validate()
			if tt.shouldFail && err == nil {
				t.Errorf("expected validation error for MaxBodySize=%d", tt.size)
			}
			if !tt.shouldFail && err != nil {
				t.Errorf("expected valid config for MaxBodySize=%d, got: %v", tt.size, err)
			}
		})
	}
}

func TestConfigValidate_MaxRedirectsBounds(t *testing.T) {
	tests := []struct {
		name       string
		redirects  int
		shouldFail bool
	}{
		{"negative", -1, true},
		{"zero", 0, false},
		{"at maximum", 10, false},
		{"above maximum", 11, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := fetcher.DefaultConfig()
			cfg.MaxRedirects = tt.redirects
			err := cfg.Validate()
			if tt.shouldFail && err == nil {
				t.Errorf("expected validation error for MaxRedirects=%d", tt.redirects)
			}
			if !tt.shouldFail && err != nil {
				t.Errorf("expected valid config for MaxRedirects=%d, got: %v", tt.redirects, err)
			}
		})
	}
}

func TestConfigValidate_RateLimit(t *testing.T) {
	cfg := fetcher.DefaultConfig()
	cfg.RatePerSecond = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for zero rate")
	}

	cfg = fetcher.DefaultConfig()
	cfg.Burst = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for zero burst")
	}
}

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	cfg, err := fetcher.LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadConfigFromEnv() error = %v", err)
	}

	want := fetcher.DefaultConfig()
	if cfg != want {
		t.Errorf("expected defaults %+v, got %+v", want, cfg)
	}
}

func TestLoadConfigFromEnv_CustomValues(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT", "20s")
	t.Setenv("FETCH_MAX_BODY_SIZE", "20971520")
	t.Setenv("FETCH_MAX_REDIRECTS", "3")
	t.Setenv("FETCH_DENY_PRIVATE_IPS", "false")
	t.Setenv("FETCH_USER_AGENT", "CustomBot/2.0")

	cfg, err := fetcher.LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadConfigFromEnv() error = %v", err)
	}

	if cfg.Timeout != 20*time.Second {
		t.Errorf("expected Timeout=20s, got %v", cfg.Timeout)
	}
	if cfg.MaxBodySize != 20971520 {
		t.Errorf("expected MaxBodySize=20971520, got %d", cfg.MaxBodySize)
	}
	if cfg.MaxRedirects != 3 {
		t.Errorf("expected MaxRedirects=3, got %d", cfg.MaxRedirects)
	}
	if cfg.DenyPrivateIPs {
		t.Error("expected DenyPrivateIPs=false")
	}
	if cfg.UserAgent != "CustomBot/2.0" {
		t.Errorf("expected UserAgent=CustomBot/2.0, got %q", cfg.UserAgent)
	}
}

func TestLoadConfigFromEnv_UnparseableFallsBack(t *testing.T) {
	// Unparseable values fall back to defaults rather than failing.
	t.Setenv("FETCH_TIMEOUT", "soon")
	t.Setenv("FETCH_MAX_BODY_SIZE", "huge")

	cfg, err := fetcher.LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadConfigFromEnv() error = %v", err)
	}

	want := fetcher.DefaultConfig()
	if cfg.Timeout != want.Timeout {
		t.Errorf("expected default Timeout=%v, got %v", want.Timeout, cfg.Timeout)
	}
	if cfg.MaxBodySize != want.MaxBodySize {
		t.Errorf("expected default MaxBodySize=%d, got %d", want.MaxBodySize, cfg.MaxBodySize)
	}
}

func TestLoadConfigFromEnv_InvalidValidation(t *testing.T) {
	// Parses fine but fails validation.
	t.Setenv("FETCH_MAX_REDIRECTS", "20")

	if _, err := fetcher.LoadConfigFromEnv(); err == nil {
		t.Error("expected validation error for MaxRedirects=20, got nil")
	}
}
