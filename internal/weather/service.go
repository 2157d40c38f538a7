package weather

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Sahil-at-Work/TripSmart/internal/domain"
	"github.com/Sahil-at-Work/TripSmart/internal/planner"
)

// forecastHorizonDays is how far ahead the 5-day forecast can answer.
const forecastHorizonDays = 5

// Service is the single entry point for weather. It never returns an error:
// live data is preferred and every failure degrades to a fallback.
type Service struct {
	source   Source
	geocoder Geocoder
	pick     Picker
	now      func() time.Time
	log      *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithGeocoder enables lookups by place name.
func WithGeocoder(g Geocoder) Option { return func(s *Service) { s.geocoder = g } }

// WithPicker replaces the random source used by fallbacks.
func WithPicker(p Picker) Option { return func(s *Service) { s.pick = p } }

// WithClock replaces time.Now when deciding which dates the forecast covers.
func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

// WithLogger sets the logger used to report fallbacks.
func WithLogger(l *slog.Logger) Option { return func(s *Service) { s.log = l } }

// NewService returns a Service backed by source. A nil source means no API
// key is configured and every lookup uses the fallback policy.
func NewService(source Source, opts ...Option) *Service {
	s := &Service{
		source: source,
		pick:   globalPicker{},
		now:    time.Now,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns current conditions at a coordinate, or a mock
// observation when live data is unavailable.
func (s *Service) Current(ctx context.Context, at domain.Coordinates) domain.Observation {
	if s.source == nil {
		s.log.WarnContext(ctx, "weather api key not configured, using mock data")
		return MockObservation(s.pick)
	}
	obs, err := s.source.Current(ctx, at)
	if err != nil {
		s.log.WarnContext(ctx, "weather lookup failed, using mock data", "error", err)
		return MockObservation(s.pick)
	}
	return obs
}

// CurrentByCity geocodes name and returns its current conditions, with the
// same mock fallback as Current.
func (s *Service) CurrentByCity(ctx context.Context, name string) domain.Observation {
	if s.geocoder == nil {
		s.log.WarnContext(ctx, "weather geocoder not configured, using mock data")
		return MockObservation(s.pick)
	}
	at, err := s.geocoder.Geocode(ctx, name)
	if err != nil {
		s.log.WarnContext(ctx, "weather geocoding failed, using mock data", "city", name, "error", err)
		return MockObservation(s.pick)
	}
	return s.Current(ctx, at)
}

// ForDate returns the weather annotation for one date at a coordinate.
func (s *Service) ForDate(ctx context.Context, at domain.Coordinates, date time.Time) domain.DayWeather {
	return s.ForDates(ctx, at, []time.Time{date})[0]
}

// ForDates returns one annotation per date, in the order given. Dates the
// live forecast covers get a forecast label such as "18°C - few clouds";
// every other date gets a seasonal guess.
func (s *Service) ForDates(ctx context.Context, at domain.Coordinates, dates []time.Time) []domain.DayWeather {
	var points []domain.ForecastPoint
	if s.source != nil && s.anyForecastable(dates) {
		p, err := s.source.Forecast(ctx, at)
		if err != nil {
			s.log.WarnContext(ctx, "weather forecast failed, using seasonal guess", "error", err)
		}
		points = p
	}

	out := make([]domain.DayWeather, len(dates))
	for i, d := range dates {
		d = planner.Civil(d)
		if obs, ok := middayForecast(points, d); ok {
			out[i] = domain.DayWeather{
				Date:        d,
				Label:       fmt.Sprintf("%d°C - %s", obs.Temperature, obs.Description),
				Source:      domain.WeatherForecast,
				Observation: &obs,
			}
			continue
		}
		out[i] = domain.DayWeather{
			Date:   d,
			Label:  SeasonalLabel(d.Month(), s.pick),
			Source: domain.WeatherSeasonal,
		}
	}
	return out
}

func (s *Service) anyForecastable(dates []time.Time) bool {
	today := s.now().UTC()
	horizon := planner.NewDateRange(today, today.AddDate(0, 0, forecastHorizonDays))
	for _, d := range dates {
		if horizon.Contains(d) {
			return true
		}
	}
	return false
}

// middayForecast picks the forecast point on date closest to 12:00 UTC.
func middayForecast(points []domain.ForecastPoint, date time.Time) (domain.Observation, bool) {
	noon := date.Add(12 * time.Hour)
	var (
		best  domain.Observation
		found bool
		gap   time.Duration
	)
	for _, p := range points {
		if !planner.Civil(p.At.UTC()).Equal(date) {
			continue
		}
		g := p.At.Sub(noon).Abs()
		if !found || g < gap {
			best, gap, found = p.Observation, g, true
		}
	}
	return best, found
}
