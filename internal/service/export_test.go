package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sahil-at-Work/TripSmart/internal/domain"
)

func TestItineraryService_Export_OneRowPerVisitInDayOrder(t *testing.T) {
	f := newFixture()
	f.visits = []domain.Visit{
		{ID: uuid.New(), AttractionID: f.z.ID, Attraction: f.z, VisitDate: day(2), VisitOrder: 1},
		{ID: uuid.New(), AttractionID: f.y.ID, Attraction: f.y, VisitDate: day(1), VisitOrder: 2, Notes: "tickets"},
		{ID: uuid.New(), AttractionID: f.x.ID, Attraction: f.x, VisitDate: day(1), VisitOrder: 1},
	}

	rows, err := f.service(nil).Export(context.Background(), f.owner, f.itinerary.ID)

	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Spring", rows[0].ItineraryTitle)
	assert.Equal(t, "Paris", rows[0].CityName)
	assert.Equal(t, "2024-03-01", rows[0].StartDate)
	assert.Equal(t, "2024-03-03", rows[0].EndDate)

	assert.Equal(t, []string{"X", "Y", "Z"}, []string{rows[0].AttractionName, rows[1].AttractionName, rows[2].AttractionName})
	assert.Equal(t, "2024-03-01", rows[0].VisitDate)
	assert.Equal(t, 2, rows[1].VisitOrder)
	assert.Equal(t, "tickets", rows[1].Notes)
	assert.Equal(t, 3.0, rows[1].DurationHours)
	require.NotNil(t, rows[0].DistanceToNextKm)
	assert.Nil(t, rows[1].DistanceToNextKm, "last stop of the day")
	assert.Nil(t, rows[2].DistanceToNextKm)
}

func TestItineraryService_Export_NoVisits(t *testing.T) {
	f := newFixture()

	rows, err := f.service(nil).Export(context.Background(), f.owner, f.itinerary.ID)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, f.itinerary.ID, rows[0].ItineraryID)
	assert.Empty(t, rows[0].VisitDate)
	assert.Empty(t, rows[0].AttractionName)
}

func TestItineraryService_Export_NotOwner(t *testing.T) {
	f := newFixture()

	_, err := f.service(nil).Export(context.Background(), f.stranger(), f.itinerary.ID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
