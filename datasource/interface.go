package datasource

import (
	"context"

	"weather-mcp/models"
)

// WeatherSource is the interface for anything that can answer the two
// queries the weather tools expose.
type WeatherSource interface {
	// GetLiveWeather fetches current conditions for a city code.
	GetLiveWeather(ctx context.Context, cityCode string) (models.LiveResponse, error)

	// GetForecast fetches the multi-day forecast for a city code.
	GetForecast(ctx context.Context, cityCode string) (models.ForecastResponse, error)

	// Name returns the source's name
	Name() string
}
