package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Sahil-at-Work/TripSmart/internal/domain"
)

// AttractionRepo reads the points of interest belonging to catalog cities.
type AttractionRepo interface {
	// ListByCity returns a city's attractions ordered by name. An unknown
	// city yields an empty slice, not an error.
	ListByCity(ctx context.Context, cityID uuid.UUID) ([]domain.Attraction, error)

	// GetByID retrieves a single attraction.
	// Returns domain.ErrNotFound if no attraction with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Attraction, error)
}

type pgAttractionRepo struct {
	db db
}

// NewAttractionRepo constructs an AttractionRepo backed by the provided db connection.
func NewAttractionRepo(db db) AttractionRepo {
	return &pgAttractionRepo{db: db}
}

const attractionColumns = `a.id, a.city_id, a.name, a.category, a.description, a.latitude, a.longitude,
	a.estimated_duration_hours, a.image_url, a.created_at`

func (r *pgAttractionRepo) ListByCity(ctx context.Context, cityID uuid.UUID) ([]domain.Attraction, error) {
	q := `SELECT ` + attractionColumns + `
		FROM attractions a
		WHERE a.city_id = @city_id
		ORDER BY a.name`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"city_id": cityID})
	if err != nil {
		return nil, fmt.Errorf("repo.AttractionRepo.ListByCity: %w", err)
	}
	defer rows.Close()

	attractions := []domain.Attraction{}
	for rows.Next() {
		a, err := scanAttraction(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.AttractionRepo.ListByCity: scan: %w", err)
		}
		attractions = append(attractions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.AttractionRepo.ListByCity: rows: %w", err)
	}
	return attractions, nil
}

func (r *pgAttractionRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Attraction, error) {
	q := `SELECT ` + attractionColumns + ` FROM attractions a WHERE a.id = @id`

	a, err := scanAttraction(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Attraction{}, fmt.Errorf("repo.AttractionRepo.GetByID: %w", notFound(err))
	}
	return a, nil
}

func attractionDest(a *domain.Attraction) (dest []any, finish func()) {
	var (
		id, cityID pgtype.UUID
		img        pgtype.Text
	)
	dest = []any{
		&id, &cityID, &a.Name, &a.Category, &a.Description, &a.Location.Lat, &a.Location.Lon,
		&a.EstimatedDurationHours, &img, &a.CreatedAt,
	}
	return dest, func() {
		a.ID = uuid.UUID(id.Bytes)
		a.CityID = uuid.UUID(cityID.Bytes)
		a.ImageURL = text(img)
	}
}

func scanAttraction(s scanner) (domain.Attraction, error) {
	var a domain.Attraction
	dest, finish := attractionDest(&a)
	if err := s.Scan(dest...); err != nil {
		return domain.Attraction{}, err
	}
	finish()
	return a, nil
}
