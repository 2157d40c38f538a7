// Package handler implements the HTTP handlers for the TripSmart API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, city.go, itinerary.go, etc.) but share the same Server
// struct so they can access its dependencies. NewRouter mounts them on chi.
package handler

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Sahil-at-Work/TripSmart/internal/domain"
)

// CatalogServicer defines the catalog operations the handlers depend on.
type CatalogServicer interface {
	ListCities(ctx context.Context) ([]domain.City, error)
	GetCity(ctx context.Context, id uuid.UUID) (domain.City, error)
	ListAttractions(ctx context.Context, cityID uuid.UUID) ([]domain.Attraction, error)
	CityWeather(ctx context.Context, cityID uuid.UUID) (domain.Observation, error)
}

// ItineraryServicer defines the itinerary operations the handlers depend on.
type ItineraryServicer interface {
	Create(ctx context.Context, sess domain.Session, it domain.Itinerary, visits []domain.Visit) (domain.Itinerary, error)
	List(ctx context.Context, sess domain.Session, p domain.PaginationParams) ([]domain.ItinerarySummary, int64, error)
	Plan(ctx context.Context, sess domain.Session, id uuid.UUID) (domain.Plan, error)
	Delete(ctx context.Context, sess domain.Session, id uuid.UUID) error
	Candidates(ctx context.Context, sess domain.Session, id uuid.UUID) ([]domain.Attraction, error)
	SaveVisits(ctx context.Context, sess domain.Session, id uuid.UUID, visits []domain.Visit) error
	AddVisit(ctx context.Context, sess domain.Session, id, attractionID uuid.UUID, date time.Time, notes string) (domain.Visit, error)
	RemoveVisit(ctx context.Context, sess domain.Session, id, visitID uuid.UUID) error
	MoveVisit(ctx context.Context, sess domain.Session, id, visitID uuid.UUID, date time.Time) (domain.Visit, error)
	Export(ctx context.Context, sess domain.Session, id uuid.UUID) ([]domain.ExportRow, error)
}

// WeatherServicer answers the public weather proxy. Both methods always
// return an observation, falling back to mock data.
type WeatherServicer interface {
	Current(ctx context.Context, at domain.Coordinates) domain.Observation
	CurrentByCity(ctx context.Context, name string) domain.Observation
}

// Server holds the dependencies shared by every handler.
type Server struct {
	catalog     CatalogServicer
	itineraries ItineraryServicer
	weather     WeatherServicer
	log         *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger discards handler error logs.
func NewServer(catalog CatalogServicer, itineraries ItineraryServicer, weather WeatherServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{catalog: catalog, itineraries: itineraries, weather: weather, log: log}
}
