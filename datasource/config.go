package datasource

import (
	"fmt"
	"os"
	"time"
)

const (
	// DefaultBaseURL is the AMap weather endpoint.
	DefaultBaseURL = "https://restapi.amap.com/v3/weather/weatherInfo"

	// DefaultTimeout bounds each API call. The upstream service gives no
	// latency guarantee, so requests are not left unbounded.
	DefaultTimeout = 10 * time.Second

	// UserAgent is sent on every outbound request.
	UserAgent = "weather-app/1.0"
)

// Config holds the settings for the AMap provider.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// FromEnv builds a Config from environment variables. AMAP_API_KEY is
// required and has no default; AMAP_BASE_URL and WEATHER_HTTP_TIMEOUT
// (a Go duration, e.g. "10s") are optional.
func FromEnv() (Config, error) {
	key := os.Getenv("AMAP_API_KEY")
	if key == "" {
		return Config{}, fmt.Errorf("AMAP_API_KEY is not set")
	}

	cfg := Config{
		APIKey:  key,
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}

	if base := os.Getenv("AMAP_BASE_URL"); base != "" {
		cfg.BaseURL = base
	}

	if raw := os.Getenv("WEATHER_HTTP_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid WEATHER_HTTP_TIMEOUT %q: %w", raw, err)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}
