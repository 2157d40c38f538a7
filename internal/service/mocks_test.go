package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Sahil-at-Work/TripSmart/internal/domain"
	"github.com/Sahil-at-Work/TripSmart/internal/repo"
	"github.com/Sahil-at-Work/TripSmart/internal/service"
)

// ---- mock repos ------------------------------------------------------------
// Each mock holds one function field per method. Set only the fields your
// test needs; calling an unset one panics, which flags an unexpected call.

type mockCityRepo struct {
	list    func(ctx context.Context) ([]domain.City, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.City, error)
}

func (m *mockCityRepo) List(ctx context.Context) ([]domain.City, error) { return m.list(ctx) }
func (m *mockCityRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.City, error) {
	return m.getByID(ctx, id)
}

type mockAttractionRepo struct {
	listByCity func(ctx context.Context, cityID uuid.UUID) ([]domain.Attraction, error)
	getByID    func(ctx context.Context, id uuid.UUID) (domain.Attraction, error)
}

func (m *mockAttractionRepo) ListByCity(ctx context.Context, cityID uuid.UUID) ([]domain.Attraction, error) {
	return m.listByCity(ctx, cityID)
}
func (m *mockAttractionRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Attraction, error) {
	return m.getByID(ctx, id)
}

type mockItineraryRepo struct {
	create     func(ctx context.Context, it domain.Itinerary, visits []domain.Visit) (domain.Itinerary, error)
	getByID    func(ctx context.Context, id uuid.UUID) (domain.Itinerary, error)
	listByUser func(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.ItinerarySummary, int64, error)
	delete     func(ctx context.Context, userID, id uuid.UUID) error
}

func (m *mockItineraryRepo) Create(ctx context.Context, it domain.Itinerary, visits []domain.Visit) (domain.Itinerary, error) {
	return m.create(ctx, it, visits)
}
func (m *mockItineraryRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Itinerary, error) {
	return m.getByID(ctx, id)
}
func (m *mockItineraryRepo) ListByUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.ItinerarySummary, int64, error) {
	return m.listByUser(ctx, userID, p)
}
func (m *mockItineraryRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.delete(ctx, userID, id)
}

type mockVisitRepo struct {
	listByItinerary func(ctx context.Context, itineraryID uuid.UUID) ([]domain.Visit, error)
	replaceAll      func(ctx context.Context, itineraryID uuid.UUID, visits []domain.Visit) error
}

func (m *mockVisitRepo) ListByItinerary(ctx context.Context, itineraryID uuid.UUID) ([]domain.Visit, error) {
	return m.listByItinerary(ctx, itineraryID)
}
func (m *mockVisitRepo) ReplaceAll(ctx context.Context, itineraryID uuid.UUID, visits []domain.Visit) error {
	return m.replaceAll(ctx, itineraryID, visits)
}

// ---- weather fakes ---------------------------------------------------------

type fakeWeather struct {
	current  func(ctx context.Context, at domain.Coordinates) domain.Observation
	forDates func(ctx context.Context, at domain.Coordinates, dates []time.Time) []domain.DayWeather
}

func (f *fakeWeather) Current(ctx context.Context, at domain.Coordinates) domain.Observation {
	return f.current(ctx, at)
}
func (f *fakeWeather) ForDates(ctx context.Context, at domain.Coordinates, dates []time.Time) []domain.DayWeather {
	return f.forDates(ctx, at, dates)
}

// compile-time checks
var (
	_ repo.CityRepo          = (*mockCityRepo)(nil)
	_ repo.AttractionRepo    = (*mockAttractionRepo)(nil)
	_ repo.ItineraryRepo     = (*mockItineraryRepo)(nil)
	_ repo.VisitRepo         = (*mockVisitRepo)(nil)
	_ service.CurrentWeather = (*fakeWeather)(nil)
	_ service.Forecaster     = (*fakeWeather)(nil)
)
