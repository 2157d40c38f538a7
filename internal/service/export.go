package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Sahil-at-Work/TripSmart/internal/domain"
	"github.com/Sahil-at-Work/TripSmart/internal/planner"
)

// Export returns one ExportRow per visit in day order, each carrying the
// distance to the next stop on the same day. An itinerary with no visits
// contributes one row with empty visit fields.
func (s *ItineraryService) Export(ctx context.Context, sess domain.Session, id uuid.UUID) ([]domain.ExportRow, error) {
	it, a, err := s.load(ctx, sess, id)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.Export: %w", err)
	}
	city, err := s.cities.GetByID(ctx, it.CityID)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.Export: city: %w", err)
	}

	base := domain.ExportRow{
		ItineraryID:    it.ID,
		ItineraryTitle: it.Title,
		CityName:       city.Name,
		StartDate:      it.StartDate.Format(planner.DateLayout),
		EndDate:        it.EndDate.Format(planner.DateLayout),
	}

	var rows []domain.ExportRow
	for _, day := range a.Days() {
		for _, stop := range day.Stops {
			row := base
			row.VisitDate = stop.Visit.VisitDate.Format(planner.DateLayout)
			row.VisitOrder = stop.Visit.VisitOrder
			row.AttractionName = stop.Visit.Attraction.Name
			row.Category = stop.Visit.Attraction.Category
			row.DurationHours = stop.Visit.Attraction.EstimatedDurationHours
			row.DistanceToNextKm = stop.DistanceToNextKm
			row.Notes = stop.Visit.Notes
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		rows = append(rows, base)
	}
	return rows, nil
}
