package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/Sahil-at-Work/TripSmart/internal/domain"
)

// seedCity inserts a catalog city directly, since the API never writes cities.
func seedCity(t *testing.T, tx pgx.Tx, name string, at domain.Coordinates) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := tx.QueryRow(context.Background(), `
		INSERT INTO cities (name, country, description, latitude, longitude, best_time_to_visit)
		VALUES ($1, 'Testland', 'A test city', $2, $3, 'Spring')
		RETURNING id`, name, at.Lat, at.Lon).Scan(&id)
	require.NoError(t, err, "seed city %q", name)
	return id
}

// seedAttraction inserts a catalog attraction belonging to cityID.
func seedAttraction(t *testing.T, tx pgx.Tx, cityID uuid.UUID, name string, hours float64, at domain.Coordinates) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := tx.QueryRow(context.Background(), `
		INSERT INTO attractions (city_id, name, category, latitude, longitude, estimated_duration_hours)
		VALUES ($1, $2, 'Landmark', $3, $4, $5)
		RETURNING id`, cityID, name, at.Lat, at.Lon, hours).Scan(&id)
	require.NoError(t, err, "seed attraction %q", name)
	return id
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// itineraryFixture returns a three-day itinerary in cityID owned by userID.
// Callers can override individual fields after calling this function.
func itineraryFixture(userID, cityID uuid.UUID) domain.Itinerary {
	return domain.Itinerary{
		UserID:    userID,
		CityID:    cityID,
		Title:     "Spring Getaway",
		StartDate: date(2024, 3, 1),
		EndDate:   date(2024, 3, 3),
	}
}
