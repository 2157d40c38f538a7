package domain

import (
	"time"

	"github.com/google/uuid"
)

// Visit is one attraction assigned to one date of an itinerary.
// VisitOrder is the 1-based position within VisitDate.
//
// Attraction is resolved inline when visits are loaded; writes only use
// AttractionID.
type Visit struct {
	ID           uuid.UUID
	ItineraryID  uuid.UUID
	AttractionID uuid.UUID
	VisitDate    time.Time
	VisitOrder   int
	Notes        string
	CreatedAt    time.Time
	Attraction   Attraction
}
