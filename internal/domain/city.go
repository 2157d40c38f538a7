// Package domain contains the core data types for the TripSmart API.
// This package has no dependencies beyond uuid and is imported by every
// other internal package (repo, service, planner, weather, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"latitude"`
	Lon float64 `json:"longitude"`
}

// City is a destination in the read-only catalog.
type City struct {
	ID              uuid.UUID
	Name            string
	Country         string
	Description     string
	Location        Coordinates
	BestTimeToVisit string
	TravelAdvisory  string
	ImageURL        string // empty when the catalog has no image
	CreatedAt       time.Time
}

// Attraction is a point of interest belonging to a City.
type Attraction struct {
	ID                     uuid.UUID
	CityID                 uuid.UUID
	Name                   string
	Category               string
	Description            string
	Location               Coordinates
	EstimatedDurationHours float64
	ImageURL               string
	CreatedAt              time.Time
}
