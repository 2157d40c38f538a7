package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Sahil-at-Work/TripSmart/internal/domain"
)

// CityRepo reads the destination catalog. Cities are seeded by migrations
// and never written by the API.
type CityRepo interface {
	// List returns every city ordered by name.
	List(ctx context.Context) ([]domain.City, error)

	// GetByID retrieves a single city.
	// Returns domain.ErrNotFound if no city with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.City, error)
}

type pgCityRepo struct {
	db db
}

// NewCityRepo constructs a CityRepo backed by the provided db connection.
func NewCityRepo(db db) CityRepo {
	return &pgCityRepo{db: db}
}

const cityColumns = `c.id, c.name, c.country, c.description, c.latitude, c.longitude,
	c.best_time_to_visit, c.travel_advisory, c.image_url, c.created_at`

func (r *pgCityRepo) List(ctx context.Context) ([]domain.City, error) {
	q := `SELECT ` + cityColumns + ` FROM cities c ORDER BY c.name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.CityRepo.List: %w", err)
	}
	defer rows.Close()

	cities := []domain.City{}
	for rows.Next() {
		c, err := scanCity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.CityRepo.List: scan: %w", err)
		}
		cities = append(cities, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CityRepo.List: rows: %w", err)
	}
	return cities, nil
}

func (r *pgCityRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.City, error) {
	q := `SELECT ` + cityColumns + ` FROM cities c WHERE c.id = @id`

	c, err := scanCity(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.City{}, fmt.Errorf("repo.CityRepo.GetByID: %w", notFound(err))
	}
	return c, nil
}

// cityDest returns scan destinations for cityColumns. finish copies the
// pgtype intermediates into c once Scan has succeeded.
func cityDest(c *domain.City) (dest []any, finish func()) {
	var (
		id  pgtype.UUID
		img pgtype.Text
	)
	dest = []any{
		&id, &c.Name, &c.Country, &c.Description, &c.Location.Lat, &c.Location.Lon,
		&c.BestTimeToVisit, &c.TravelAdvisory, &img, &c.CreatedAt,
	}
	return dest, func() {
		c.ID = uuid.UUID(id.Bytes)
		c.ImageURL = text(img)
	}
}

func scanCity(s scanner) (domain.City, error) {
	var c domain.City
	dest, finish := cityDest(&c)
	if err := s.Scan(dest...); err != nil {
		return domain.City{}, err
	}
	finish()
	return c, nil
}
