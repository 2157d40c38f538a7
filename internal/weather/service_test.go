package weather_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sahil-at-Work/TripSmart/internal/domain"
	"github.com/Sahil-at-Work/TripSmart/internal/weather"
)

// fakeGeocoder is a test double for weather.Geocoder.
type fakeGeocoder struct {
	geocode func(ctx context.Context, name string) (domain.Coordinates, error)
}

func (f *fakeGeocoder) Geocode(ctx context.Context, name string) (domain.Coordinates, error) {
	return f.geocode(ctx, name)
}

var _ weather.Geocoder = (*fakeGeocoder)(nil)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestService_Current_NoSourceUsesMock(t *testing.T) {
	s := weather.NewService(nil, weather.WithPicker(fixedPicker(1)))

	got := s.Current(context.Background(), domain.Coordinates{Lat: 1, Lon: 2})

	assert.Equal(t, weather.MockObservation(fixedPicker(1)), got)
}

func TestService_Current_SourceFailureUsesMock(t *testing.T) {
	src := &fakeSource{
		current: func(_ context.Context, _ domain.Coordinates) (domain.Observation, error) {
			return domain.Observation{}, errUpstream
		},
	}
	s := weather.NewService(src, weather.WithPicker(fixedPicker(2)))

	got := s.Current(context.Background(), domain.Coordinates{})

	assert.Equal(t, "light rain", got.Description)
	assert.Equal(t, "Unknown", got.City)
	assert.Equal(t, 1, src.currentCalls)
}

func TestService_Current_Live(t *testing.T) {
	want := domain.Observation{Temperature: 30, Description: "clear sky", City: "Cairo"}
	src := &fakeSource{
		current: func(_ context.Context, at domain.Coordinates) (domain.Observation, error) {
			assert.Equal(t, domain.Coordinates{Lat: 30.04, Lon: 31.24}, at)
			return want, nil
		},
	}
	s := weather.NewService(src)

	assert.Equal(t, want, s.Current(context.Background(), domain.Coordinates{Lat: 30.04, Lon: 31.24}))
}

func TestService_CurrentByCity(t *testing.T) {
	src := &fakeSource{
		current: func(_ context.Context, at domain.Coordinates) (domain.Observation, error) {
			return domain.Observation{City: "Lisbon", Temperature: int(at.Lat)}, nil
		},
	}
	geo := &fakeGeocoder{
		geocode: func(_ context.Context, name string) (domain.Coordinates, error) {
			if name == "Lisbon" {
				return domain.Coordinates{Lat: 38.7, Lon: -9.1}, nil
			}
			return domain.Coordinates{}, domain.ErrNotFound
		},
	}
	s := weather.NewService(src, weather.WithGeocoder(geo), weather.WithPicker(fixedPicker(0)))

	got := s.CurrentByCity(context.Background(), "Lisbon")
	assert.Equal(t, "Lisbon", got.City)
	assert.Equal(t, 38, got.Temperature)

	got = s.CurrentByCity(context.Background(), "Nowhere")
	assert.Equal(t, "Unknown", got.City)
}

func TestService_CurrentByCity_NoGeocoderUsesMock(t *testing.T) {
	s := weather.NewService(nil, weather.WithPicker(fixedPicker(0)))

	got := s.CurrentByCity(context.Background(), "Lisbon")

	assert.Equal(t, "clear sky", got.Description)
}

func TestService_ForDates_ForecastWithinHorizon(t *testing.T) {
	now := time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)
	src := &fakeSource{
		forecast: func(_ context.Context, _ domain.Coordinates) ([]domain.ForecastPoint, error) {
			return []domain.ForecastPoint{
				{At: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), Observation: domain.Observation{Temperature: 7, Description: "mist"}},
				{At: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), Observation: domain.Observation{Temperature: 12, Description: "few clouds"}},
				{At: time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC), Observation: domain.Observation{Temperature: 10, Description: "clear sky"}},
				{At: time.Date(2024, 3, 2, 15, 0, 0, 0, time.UTC), Observation: domain.Observation{Temperature: 14, Description: "light rain"}},
			}, nil
		},
	}
	s := weather.NewService(src, weather.WithClock(fixedClock(now)), weather.WithPicker(fixedPicker(0)))

	got := s.ForDates(context.Background(), domain.Coordinates{}, []time.Time{
		day(2024, 3, 1), day(2024, 3, 2), day(2024, 3, 20),
	})

	require.Len(t, got, 3)
	assert.Equal(t, "12°C - few clouds", got[0].Label)
	assert.Equal(t, domain.WeatherForecast, got[0].Source)
	require.NotNil(t, got[0].Observation)
	assert.Equal(t, 12, got[0].Observation.Temperature)

	assert.Equal(t, "14°C - light rain", got[1].Label)

	assert.Equal(t, domain.WeatherSeasonal, got[2].Source)
	assert.Equal(t, "Mild", got[2].Label)
	assert.Nil(t, got[2].Observation)
	assert.True(t, got[2].Date.Equal(day(2024, 3, 20)))

	assert.Equal(t, 1, src.forecastCalls)
}

func TestService_ForDates_FarFutureSkipsForecast(t *testing.T) {
	src := &fakeSource{
		forecast: func(_ context.Context, _ domain.Coordinates) ([]domain.ForecastPoint, error) {
			t.Fatal("forecast should not be requested")
			return nil, nil
		},
	}
	s := weather.NewService(src,
		weather.WithClock(fixedClock(day(2024, 1, 10))),
		weather.WithPicker(fixedPicker(1)),
	)

	got := s.ForDates(context.Background(), domain.Coordinates{}, []time.Time{day(2024, 7, 4)})

	require.Len(t, got, 1)
	assert.Equal(t, "Very Warm", got[0].Label)
	assert.Equal(t, domain.WeatherSeasonal, got[0].Source)
}

func TestService_ForDates_HorizonReadsClockOnce(t *testing.T) {
	// The clock crosses midnight between reads.
	reads := 0
	clock := func() time.Time {
		reads++
		if reads == 1 {
			return time.Date(2024, 3, 1, 23, 59, 59, 0, time.UTC)
		}
		return time.Date(2024, 3, 2, 0, 0, 1, 0, time.UTC)
	}
	src := &fakeSource{
		forecast: func(_ context.Context, _ domain.Coordinates) ([]domain.ForecastPoint, error) {
			return nil, nil
		},
	}
	s := weather.NewService(src, weather.WithClock(clock), weather.WithPicker(fixedPicker(0)))

	got := s.ForDates(context.Background(), domain.Coordinates{}, []time.Time{day(2024, 3, 7)})

	require.Len(t, got, 1)
	assert.Equal(t, 1, reads)
	assert.Zero(t, src.forecastCalls, "2024-03-07 is past a horizon starting 2024-03-01")
	assert.Equal(t, domain.WeatherSeasonal, got[0].Source)
}

func TestService_ForDate_ForecastFailureFallsBack(t *testing.T) {
	src := &fakeSource{
		forecast: func(_ context.Context, _ domain.Coordinates) ([]domain.ForecastPoint, error) {
			return nil, errUpstream
		},
	}
	s := weather.NewService(src,
		weather.WithClock(fixedClock(day(2024, 12, 1))),
		weather.WithPicker(fixedPicker(0)),
	)

	got := s.ForDate(context.Background(), domain.Coordinates{}, day(2024, 12, 2))

	assert.Equal(t, "Cold", got.Label)
	assert.Equal(t, domain.WeatherSeasonal, got.Source)
}

func TestService_ForDates_NoSourceIsSeasonal(t *testing.T) {
	s := weather.NewService(nil, weather.WithPicker(fixedPicker(2)))

	got := s.ForDates(context.Background(), domain.Coordinates{}, []time.Time{day(2030, 10, 1)})

	assert.Equal(t, "Cool", got[0].Label)
}
