package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sahil-at-Work/TripSmart/internal/domain"
	"github.com/Sahil-at-Work/TripSmart/internal/geo"
)

var (
	paris  = domain.Coordinates{Lat: 48.8566, Lon: 2.3522}
	london = domain.Coordinates{Lat: 51.5074, Lon: -0.1278}
)

func TestDistanceKm_SamePointIsZero(t *testing.T) {
	for _, p := range []domain.Coordinates{{}, paris, london, {Lat: -33.86, Lon: 151.21}} {
		assert.Zero(t, geo.DistanceKm(p, p))
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	assert.InDelta(t, geo.DistanceKm(paris, london), geo.DistanceKm(london, paris), 1e-9)
}

func TestDistanceKm_OneDegreeOfLongitudeAtEquator(t *testing.T) {
	got := geo.DistanceKm(domain.Coordinates{Lat: 0, Lon: 0}, domain.Coordinates{Lat: 0, Lon: 1})
	assert.InDelta(t, 111.19, got, 0.01)
}

func TestDistanceKm_ParisLondon(t *testing.T) {
	assert.InDelta(t, 343.5, geo.DistanceKm(paris, london), 1.0)
}

func TestRouteKm(t *testing.T) {
	a := domain.Coordinates{Lat: 0, Lon: 0}
	b := domain.Coordinates{Lat: 0, Lon: 1}
	c := domain.Coordinates{Lat: 0, Lon: 2}

	assert.Zero(t, geo.RouteKm(nil))
	assert.Zero(t, geo.RouteKm([]domain.Coordinates{a}))
	assert.InDelta(t, 2*geo.DistanceKm(a, b), geo.RouteKm([]domain.Coordinates{a, b, c}), 1e-9)
}
