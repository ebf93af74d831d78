// amapcheck queries the AMap weather API directly and prints the
// formatted reports, for smoke-testing a key and city code outside the
// MCP loop.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"weather-mcp/datasource"
	"weather-mcp/report"

	"github.com/joho/godotenv"
)

func main() {
	city := flag.String("city", "110000", "AMap city code to query")
	timeout := flag.Duration("timeout", datasource.DefaultTimeout, "HTTP request timeout")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg, err := datasource.FromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.Timeout = *timeout

	provider := datasource.NewAmapProvider(cfg)

	// Each query gets its own deadline so the pause between the two
	// calls cannot eat into the second one's budget.
	liveCtx, cancelLive := context.WithTimeout(context.Background(), *timeout)
	defer cancelLive()

	fmt.Printf("Fetching current weather for %s from %s...\n", *city, provider.Name())
	live, err := provider.GetLiveWeather(liveCtx, *city)
	if err != nil {
		log.Fatalf("Current weather query failed: %v", err)
	}
	fmt.Println(report.FormatLive(live.Lives))

	// Give the endpoint a beat between the two calls
	time.Sleep(500 * time.Millisecond)

	forecastCtx, cancelForecast := context.WithTimeout(context.Background(), *timeout)
	defer cancelForecast()

	fmt.Printf("Fetching forecast for %s from %s...\n", *city, provider.Name())
	forecast, err := provider.GetForecast(forecastCtx, *city)
	if err != nil {
		log.Fatalf("Forecast query failed: %v", err)
	}
	fmt.Println(report.FormatForecast(forecast.Forecasts))
}
