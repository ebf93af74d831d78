// Package report renders decoded weather payloads into the fixed text
// blocks returned to the tool caller. Formatting is deterministic and
// never fails.
package report

import (
	"fmt"
	"strings"

	"weather-mcp/models"
)

// Sentinels returned for empty payloads.
const (
	NoAlerts   = "No active alerts found."
	NoForecast = "No forecast data available."
)

// FormatLive renders current-conditions reports, one block per report
// in input order, each terminated by a "---" line.
func FormatLive(lives []models.Live) string {
	if len(lives) == 0 {
		return NoAlerts
	}

	var b strings.Builder
	b.Grow(len(lives) * 200)

	for _, live := range lives {
		fmt.Fprintf(&b, "省份: %s\n城市: %s\n天气: %s\n温度: %s°\n风向: %s(%s)\n---\n",
			live.Province,
			live.City,
			live.Weather,
			live.Temperature,
			live.WindDirection,
			live.WindPower,
		)
	}

	return b.String()
}

// FormatForecast renders forecast envelopes: for each city in order,
// one block per day with a daytime and a nighttime summary line.
// The trailing space on the daytime line matches the upstream template.
func FormatForecast(forecasts []models.Forecast) string {
	if len(forecasts) == 0 {
		return NoForecast
	}

	var b strings.Builder
	b.Grow(len(forecasts) * 150)

	for _, forecast := range forecasts {
		for _, day := range forecast.Casts {
			fmt.Fprintf(&b, "日期: %s\n白天: %s %s° %s(%s) \n夜间: %s %s° %s(%s)\n---\n",
				day.Date,
				day.DayWeather, day.DayTemp, day.DayWind, day.DayPower,
				day.NightWeather, day.NightTemp, day.NightWind, day.NightPower,
			)
		}
	}

	return b.String()
}
