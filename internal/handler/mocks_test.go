package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Sahil-at-Work/TripSmart/internal/domain"
	"github.com/Sahil-at-Work/TripSmart/internal/handler"
	"github.com/Sahil-at-Work/TripSmart/internal/middleware"
)

// ---- mock CatalogServicer --------------------------------------------------

type mockCatalog struct {
	listCities      func(ctx context.Context) ([]domain.City, error)
	getCity         func(ctx context.Context, id uuid.UUID) (domain.City, error)
	listAttractions func(ctx context.Context, cityID uuid.UUID) ([]domain.Attraction, error)
	cityWeather     func(ctx context.Context, cityID uuid.UUID) (domain.Observation, error)
}

func (m *mockCatalog) ListCities(ctx context.Context) ([]domain.City, error) {
	return m.listCities(ctx)
}
func (m *mockCatalog) GetCity(ctx context.Context, id uuid.UUID) (domain.City, error) {
	return m.getCity(ctx, id)
}
func (m *mockCatalog) ListAttractions(ctx context.Context, cityID uuid.UUID) ([]domain.Attraction, error) {
	return m.listAttractions(ctx, cityID)
}
func (m *mockCatalog) CityWeather(ctx context.Context, cityID uuid.UUID) (domain.Observation, error) {
	return m.cityWeather(ctx, cityID)
}

// ---- mock ItineraryServicer ------------------------------------------------

type mockItineraries struct {
	create      func(ctx context.Context, sess domain.Session, it domain.Itinerary, visits []domain.Visit) (domain.Itinerary, error)
	list        func(ctx context.Context, sess domain.Session, p domain.PaginationParams) ([]domain.ItinerarySummary, int64, error)
	plan        func(ctx context.Context, sess domain.Session, id uuid.UUID) (domain.Plan, error)
	delete      func(ctx context.Context, sess domain.Session, id uuid.UUID) error
	candidates  func(ctx context.Context, sess domain.Session, id uuid.UUID) ([]domain.Attraction, error)
	saveVisits  func(ctx context.Context, sess domain.Session, id uuid.UUID, visits []domain.Visit) error
	addVisit    func(ctx context.Context, sess domain.Session, id, attractionID uuid.UUID, date time.Time, notes string) (domain.Visit, error)
	removeVisit func(ctx context.Context, sess domain.Session, id, visitID uuid.UUID) error
	moveVisit   func(ctx context.Context, sess domain.Session, id, visitID uuid.UUID, date time.Time) (domain.Visit, error)
	export      func(ctx context.Context, sess domain.Session, id uuid.UUID) ([]domain.ExportRow, error)
}

func (m *mockItineraries) Create(ctx context.Context, sess domain.Session, it domain.Itinerary, visits []domain.Visit) (domain.Itinerary, error) {
	return m.create(ctx, sess, it, visits)
}
func (m *mockItineraries) List(ctx context.Context, sess domain.Session, p domain.PaginationParams) ([]domain.ItinerarySummary, int64, error) {
	return m.list(ctx, sess, p)
}
func (m *mockItineraries) Plan(ctx context.Context, sess domain.Session, id uuid.UUID) (domain.Plan, error) {
	return m.plan(ctx, sess, id)
}
func (m *mockItineraries) Delete(ctx context.Context, sess domain.Session, id uuid.UUID) error {
	return m.delete(ctx, sess, id)
}
func (m *mockItineraries) Candidates(ctx context.Context, sess domain.Session, id uuid.UUID) ([]domain.Attraction, error) {
	return m.candidates(ctx, sess, id)
}
func (m *mockItineraries) SaveVisits(ctx context.Context, sess domain.Session, id uuid.UUID, visits []domain.Visit) error {
	return m.saveVisits(ctx, sess, id, visits)
}
func (m *mockItineraries) AddVisit(ctx context.Context, sess domain.Session, id, attractionID uuid.UUID, date time.Time, notes string) (domain.Visit, error) {
	return m.addVisit(ctx, sess, id, attractionID, date, notes)
}
func (m *mockItineraries) RemoveVisit(ctx context.Context, sess domain.Session, id, visitID uuid.UUID) error {
	return m.removeVisit(ctx, sess, id, visitID)
}
func (m *mockItineraries) MoveVisit(ctx context.Context, sess domain.Session, id, visitID uuid.UUID, date time.Time) (domain.Visit, error) {
	return m.moveVisit(ctx, sess, id, visitID, date)
}
func (m *mockItineraries) Export(ctx context.Context, sess domain.Session, id uuid.UUID) ([]domain.ExportRow, error) {
	return m.export(ctx, sess, id)
}

// ---- mock WeatherServicer --------------------------------------------------

type mockWeather struct {
	current       func(ctx context.Context, at domain.Coordinates) domain.Observation
	currentByCity func(ctx context.Context, name string) domain.Observation
}

func (m *mockWeather) Current(ctx context.Context, at domain.Coordinates) domain.Observation {
	return m.current(ctx, at)
}
func (m *mockWeather) CurrentByCity(ctx context.Context, name string) domain.Observation {
	return m.currentByCity(ctx, name)
}

// compile-time checks: mocks must satisfy the handler interfaces.
var (
	_ handler.CatalogServicer   = (*mockCatalog)(nil)
	_ handler.ItineraryServicer = (*mockItineraries)(nil)
	_ handler.WeatherServicer   = (*mockWeather)(nil)
)

// ---- helpers ---------------------------------------------------------------

// owner is the session every authenticated test request carries.
var owner = domain.Session{
	UserID: uuid.MustParse("0b7f3c52-5d7e-4f0a-9c43-1d2e3f4a5b6c"),
	Email:  "ada@example.com",
}

// asOwner stands in for the JWT authenticator.
func asOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(middleware.WithSession(r.Context(), owner)))
	})
}

// deps bundles the mocks a test router is built from. Unset mocks are
// empty and panic if the handler reaches them.
type deps struct {
	catalog     *mockCatalog
	itineraries *mockItineraries
	weather     *mockWeather
}

func newTestRouter(d deps) http.Handler {
	if d.catalog == nil {
		d.catalog = &mockCatalog{}
	}
	if d.itineraries == nil {
		d.itineraries = &mockItineraries{}
	}
	if d.weather == nil {
		d.weather = &mockWeather{}
	}
	srv := handler.NewServer(d.catalog, d.itineraries, d.weather, nil)
	return handler.NewRouter(srv, handler.RouterOptions{Authenticate: asOwner})
}

// do sends one request through h and returns the recorded response.
func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// errorBody is the shape of every error response.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func day(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }

func cityFixture() domain.City {
	return domain.City{
		ID:              uuid.MustParse("7b0c1f5e-2a4d-4c1b-9f3e-000000000001"),
		Name:            "Paris",
		Country:         "France",
		Description:     "City of light",
		Location:        domain.Coordinates{Lat: 48.8566, Lon: 2.3522},
		BestTimeToVisit: "April to June",
		TravelAdvisory:  "Low risk",
	}
}

func attractionFixture(name string, lon, hours float64) domain.Attraction {
	return domain.Attraction{
		ID:                     uuid.New(),
		CityID:                 cityFixture().ID,
		Name:                   name,
		Category:               "Landmark",
		Location:               domain.Coordinates{Lat: 48.85, Lon: lon},
		EstimatedDurationHours: hours,
	}
}

func itineraryFixture() domain.Itinerary {
	return domain.Itinerary{
		ID:        uuid.New(),
		UserID:    owner.UserID,
		CityID:    cityFixture().ID,
		Title:     "Spring in Paris",
		StartDate: day(1),
		EndDate:   day(3),
		CreatedAt: time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC),
	}
}
