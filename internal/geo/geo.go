// Package geo computes great-circle distances on a spherical Earth.
package geo

import (
	"math"

	"github.com/Sahil-at-Work/TripSmart/internal/domain"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// DistanceKm returns the haversine distance between a and b in kilometres.
// Inputs are not validated; out-of-range coordinates give a defined but
// meaningless result.
func DistanceKm(a, b domain.Coordinates) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*sinLon*sinLon

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// RouteKm sums DistanceKm over each consecutive pair of points.
func RouteKm(points []domain.Coordinates) float64 {
	total := 0.0
	for i := 0; i+1 < len(points); i++ {
		total += DistanceKm(points[i], points[i+1])
	}
	return total
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
