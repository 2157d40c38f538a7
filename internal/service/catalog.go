// Package service contains the business logic for the TripSmart API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Sahil-at-Work/TripSmart/internal/domain"
	"github.com/Sahil-at-Work/TripSmart/internal/repo"
)

// CurrentWeather reports conditions at a coordinate. It never fails; an
// implementation degrades to fallback data instead. *weather.Service satisfies it.
type CurrentWeather interface {
	Current(ctx context.Context, at domain.Coordinates) domain.Observation
}

// Forecaster annotates calendar dates at a coordinate with weather, one
// entry per date in the order given. *weather.Service satisfies it.
type Forecaster interface {
	ForDates(ctx context.Context, at domain.Coordinates, dates []time.Time) []domain.DayWeather
}

// CatalogService serves the read-only city and attraction catalog.
type CatalogService struct {
	cities      repo.CityRepo
	attractions repo.AttractionRepo
	weather     CurrentWeather
}

// NewCatalogService constructs a CatalogService backed by the provided repos.
func NewCatalogService(cities repo.CityRepo, attractions repo.AttractionRepo, weather CurrentWeather) *CatalogService {
	return &CatalogService{cities: cities, attractions: attractions, weather: weather}
}

// ListCities returns every catalog city ordered by name.
func (s *CatalogService) ListCities(ctx context.Context) ([]domain.City, error) {
	cities, err := s.cities.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.ListCities: %w", err)
	}
	return cities, nil
}

// GetCity returns one city or domain.ErrNotFound.
func (s *CatalogService) GetCity(ctx context.Context, id uuid.UUID) (domain.City, error) {
	c, err := s.cities.GetByID(ctx, id)
	if err != nil {
		return domain.City{}, fmt.Errorf("service.CatalogService.GetCity: %w", err)
	}
	return c, nil
}

// ListAttractions returns a city's attractions ordered by name.
// Unlike the repo, an unknown city is domain.ErrNotFound rather than an empty list.
func (s *CatalogService) ListAttractions(ctx context.Context, cityID uuid.UUID) ([]domain.Attraction, error) {
	if _, err := s.cities.GetByID(ctx, cityID); err != nil {
		return nil, fmt.Errorf("service.CatalogService.ListAttractions: %w", err)
	}
	attractions, err := s.attractions.ListByCity(ctx, cityID)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.ListAttractions: %w", err)
	}
	return attractions, nil
}

// CityWeather returns current conditions at the city's coordinates.
func (s *CatalogService) CityWeather(ctx context.Context, cityID uuid.UUID) (domain.Observation, error) {
	c, err := s.cities.GetByID(ctx, cityID)
	if err != nil {
		return domain.Observation{}, fmt.Errorf("service.CatalogService.CityWeather: %w", err)
	}
	return s.weather.Current(ctx, c.Location), nil
}
