package models

// ForecastResponse is the envelope for a multi-day forecast query
// (extensions=all).
type ForecastResponse struct {
	Status    string     `json:"status"`
	Count     string     `json:"count"`
	Info      string     `json:"info"`
	Infocode  string     `json:"infocode"`
	Forecasts []Forecast `json:"forecasts"`
}

// Forecast is the forecast for one city: an ordered run of day entries.
// The API may return several city envelopes per call, though a query by
// city code yields one.
type Forecast struct {
	City  string        `json:"city"`
	Casts []DayForecast `json:"casts"`
}

// DayForecast is one calendar day of the forecast, split into daytime
// and nighttime conditions. All scalars are strings, same as Live.
type DayForecast struct {
	Date         string `json:"date"`
	DayWeather   string `json:"dayweather"`
	NightWeather string `json:"nightweather"`
	DayTemp      string `json:"daytemp"`
	NightTemp    string `json:"nighttemp"`
	DayWind      string `json:"daywind"`
	NightWind    string `json:"nightwind"`
	DayPower     string `json:"daypower"`
	NightPower   string `json:"nightpower"`
}
