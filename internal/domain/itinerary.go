package domain

import (
	"time"

	"github.com/google/uuid"
)

// Itinerary is a user's planned trip to one city over an inclusive date range.
// StartDate and EndDate are civil dates held at UTC midnight.
type Itinerary struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CityID    uuid.UUID
	Title     string
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItinerarySummary is an Itinerary joined with its city, as shown in a
// user's list of saved trips.
type ItinerarySummary struct {
	Itinerary
	City City
}
