package domain

import "github.com/google/uuid"

// ExportRow is a single row in an itinerary export.
// It is a flat, denormalized view: one row per visit, with itinerary fields
// repeated for every visit. Itineraries with no visits yield one row with
// zero values for all visit fields.
type ExportRow struct {
	// Itinerary fields, repeated for every visit.
	ItineraryID    uuid.UUID
	ItineraryTitle string
	CityName       string
	StartDate      string // "2006-01-02"
	EndDate        string

	// Visit fields, zero values when the itinerary has no visits.
	VisitDate        string
	VisitOrder       int
	AttractionName   string
	Category         string
	DurationHours    float64
	DistanceToNextKm *float64
	Notes            string
}
