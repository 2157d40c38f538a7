package domain

import "time"

// Observation is a flattened weather reading. Temperatures are whole degrees
// Celsius, WindSpeed is metres per second.
// The JSON shape is the public contract of the weather endpoints.
type Observation struct {
	Temperature int     `json:"temperature"`
	FeelsLike   int     `json:"feelsLike"`
	Humidity    int     `json:"humidity"`
	Description string  `json:"description"`
	Main        string  `json:"main"`
	Icon        string  `json:"icon"`
	WindSpeed   float64 `json:"windSpeed"`
	City        string  `json:"city"`
}

// ForecastPoint is an Observation valid at a specific instant.
type ForecastPoint struct {
	At          time.Time
	Observation Observation
}

// WeatherSource records where a DayWeather label came from.
type WeatherSource string

const (
	WeatherForecast WeatherSource = "forecast"
	WeatherSeasonal WeatherSource = "seasonal"
)

// DayWeather is the weather annotation for one itinerary date.
// Observation is set only when Source is WeatherForecast.
type DayWeather struct {
	Date        time.Time
	Label       string
	Source      WeatherSource
	Observation *Observation
}
