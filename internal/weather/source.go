// Package weather answers "what is the weather for this place on this date".
// Live data comes from OpenWeather through a Source; when no Source is
// configured or it fails, callers get a seasonal guess (for dated lookups) or
// a canned observation (for current conditions), never an error.
package weather

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/Sahil-at-Work/TripSmart/internal/domain"
)

// Source provides live weather for a coordinate.
type Source interface {
	// Current returns the conditions observed now.
	Current(ctx context.Context, at domain.Coordinates) (domain.Observation, error)
	// Forecast returns forecast points for the next few days, oldest first.
	Forecast(ctx context.Context, at domain.Coordinates) ([]domain.ForecastPoint, error)
}

// Geocoder resolves a place name to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, name string) (domain.Coordinates, error)
}

// Picker chooses an index in [0, n). *rand.Rand from math/rand/v2 satisfies it,
// so tests can pass a seeded generator.
type Picker interface {
	IntN(n int) int
}

type globalPicker struct{}

func (globalPicker) IntN(n int) int { return rand.IntN(n) }

// seasonal holds plausible adjectives per calendar month, January first.
var seasonal = [12][]string{
	{"Cold", "Chilly", "Crisp"},
	{"Cool", "Mild", "Pleasant"},
	{"Mild", "Pleasant", "Warm"},
	{"Pleasant", "Warm", "Sunny"},
	{"Warm", "Sunny", "Beautiful"},
	{"Hot", "Sunny", "Clear"},
	{"Hot", "Very Warm", "Sunny"},
	{"Hot", "Very Warm", "Sunny"},
	{"Warm", "Pleasant", "Sunny"},
	{"Mild", "Pleasant", "Cool"},
	{"Cool", "Chilly", "Crisp"},
	{"Cold", "Chilly", "Crisp"},
}

// SeasonalLabel picks one descriptive adjective for month.
// It is a cosmetic guess, not a forecast.
func SeasonalLabel(month time.Month, p Picker) string {
	if month < time.January || month > time.December {
		return "Pleasant"
	}
	options := seasonal[month-1]
	return options[p.IntN(len(options))]
}

var mockConditions = []struct {
	main        string
	description string
	temperature int
}{
	{"Clear", "clear sky", 22},
	{"Clouds", "few clouds", 18},
	{"Rain", "light rain", 15},
}

// MockObservation returns one of three canned readings.
func MockObservation(p Picker) domain.Observation {
	c := mockConditions[p.IntN(len(mockConditions))]
	return domain.Observation{
		Temperature: c.temperature,
		FeelsLike:   c.temperature - 2,
		Humidity:    65,
		Description: c.description,
		Main:        c.main,
		Icon:        "01d",
		WindSpeed:   3.5,
		City:        "Unknown",
	}
}
