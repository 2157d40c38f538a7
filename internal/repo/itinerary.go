package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Sahil-at-Work/TripSmart/internal/domain"
)

// ItineraryRepo defines the persistence operations for Itineraries.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type ItineraryRepo interface {
	// Create inserts a new itinerary together with its initial visits in one
	// transaction and returns the persisted itinerary (with DB-generated id,
	// created_at, and updated_at populated). If any visit fails to insert,
	// nothing is written.
	Create(ctx context.Context, it domain.Itinerary, visits []domain.Visit) (domain.Itinerary, error)

	// GetByID retrieves a single itinerary regardless of owner.
	// Returns domain.ErrNotFound if no itinerary with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Itinerary, error)

	// ListByUser returns one page of a user's itineraries joined with their
	// city, newest first, and the user's total itinerary count.
	ListByUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.ItinerarySummary, int64, error)

	// Delete removes an itinerary and its visits, scoped to the owning user.
	// Returns domain.ErrNotFound if the user has no itinerary with that ID.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type pgItineraryRepo struct {
	db db
}

// NewItineraryRepo constructs an ItineraryRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewItineraryRepo(db db) ItineraryRepo {
	return &pgItineraryRepo{db: db}
}

const itineraryColumns = `i.id, i.user_id, i.city_id, i.title, i.start_date, i.end_date, i.created_at, i.updated_at`

func (r *pgItineraryRepo) Create(ctx context.Context, it domain.Itinerary, visits []domain.Visit) (domain.Itinerary, error) {
	const q = `
		INSERT INTO itineraries AS i (user_id, city_id, title, start_date, end_date)
		VALUES (@user_id, @city_id, @title, @start_date, @end_date)
		RETURNING ` + itineraryColumns

	var created domain.Itinerary
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, q, pgx.NamedArgs{
			"user_id":    it.UserID,
			"city_id":    it.CityID,
			"title":      it.Title,
			"start_date": it.StartDate,
			"end_date":   it.EndDate,
		})
		var err error
		if created, err = scanItinerary(row); err != nil {
			return err
		}
		return insertVisits(ctx, tx, created.ID, visits)
	})
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.Create: %w", err)
	}
	return created, nil
}

func (r *pgItineraryRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Itinerary, error) {
	q := `SELECT ` + itineraryColumns + ` FROM itineraries i WHERE i.id = @id`

	it, err := scanItinerary(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.GetByID: %w", notFound(err))
	}
	return it, nil
}

func (r *pgItineraryRepo) ListByUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.ItinerarySummary, int64, error) {
	const countQ = `SELECT count(*) FROM itineraries WHERE user_id = @user_id`

	var total int64
	if err := r.db.QueryRow(ctx, countQ, pgx.NamedArgs{"user_id": userID}).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.ItineraryRepo.ListByUser: count: %w", err)
	}

	q := `SELECT ` + itineraryColumns + `, ` + cityColumns + `
		FROM itineraries i
		JOIN cities c ON c.id = i.city_id
		WHERE i.user_id = @user_id
		ORDER BY i.created_at DESC, i.id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"user_id": userID,
		"limit":   p.Limit,
		"offset":  p.Offset(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.ItineraryRepo.ListByUser: %w", err)
	}
	defer rows.Close()

	out := []domain.ItinerarySummary{}
	for rows.Next() {
		var s domain.ItinerarySummary
		itDest, itFinish := itineraryDest(&s.Itinerary)
		cityDst, cityFinish := cityDest(&s.City)
		if err := rows.Scan(append(itDest, cityDst...)...); err != nil {
			return nil, 0, fmt.Errorf("repo.ItineraryRepo.ListByUser: scan: %w", err)
		}
		itFinish()
		cityFinish()
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.ItineraryRepo.ListByUser: rows: %w", err)
	}
	return out, total, nil
}

func (r *pgItineraryRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	const q = `DELETE FROM itineraries WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.ItineraryRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ItineraryRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func itineraryDest(it *domain.Itinerary) (dest []any, finish func()) {
	var (
		id, userID, cityID pgtype.UUID
		start, end         pgtype.Date
	)
	dest = []any{&id, &userID, &cityID, &it.Title, &start, &end, &it.CreatedAt, &it.UpdatedAt}
	return dest, func() {
		it.ID = uuid.UUID(id.Bytes)
		it.UserID = uuid.UUID(userID.Bytes)
		it.CityID = uuid.UUID(cityID.Bytes)
		it.StartDate = start.Time
		it.EndDate = end.Time
	}
}

func scanItinerary(s scanner) (domain.Itinerary, error) {
	var it domain.Itinerary
	dest, finish := itineraryDest(&it)
	if err := s.Scan(dest...); err != nil {
		return domain.Itinerary{}, err
	}
	finish()
	return it, nil
}
