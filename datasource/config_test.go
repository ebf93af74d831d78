package datasource

import (
	"testing"
	"time"
)

func TestFromEnvRequiresAPIKey(t *testing.T) {
	t.Setenv("AMAP_API_KEY", "")

	if _, err := FromEnv(); err == nil {
		t.Fatal("expected an error when AMAP_API_KEY is unset")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("AMAP_API_KEY", "test-key")
	t.Setenv("AMAP_BASE_URL", "")
	t.Setenv("WEATHER_HTTP_TIMEOUT", "")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}

	if cfg.APIKey != "test-key" {
		t.Errorf("api key: got %q", cfg.APIKey)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("base URL: got %q, want %q", cfg.BaseURL, DefaultBaseURL)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("timeout: got %v, want %v", cfg.Timeout, DefaultTimeout)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("AMAP_API_KEY", "test-key")
	t.Setenv("AMAP_BASE_URL", "http://localhost:9999/weather")
	t.Setenv("WEATHER_HTTP_TIMEOUT", "3s")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}

	if cfg.BaseURL != "http://localhost:9999/weather" {
		t.Errorf("base URL override ignored: %q", cfg.BaseURL)
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("timeout override ignored: %v", cfg.Timeout)
	}
}

func TestFromEnvBadTimeout(t *testing.T) {
	t.Setenv("AMAP_API_KEY", "test-key")
	t.Setenv("WEATHER_HTTP_TIMEOUT", "not-a-duration")

	if _, err := FromEnv(); err == nil {
		t.Fatal("expected an error for an unparseable timeout")
	}
}
