package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Sahil-at-Work/TripSmart/internal/domain"
)

// VisitRepo defines the persistence operations for itinerary items.
// Visits are always written as a complete set per itinerary.
type VisitRepo interface {
	// ListByItinerary returns an itinerary's visits with their attraction
	// resolved, ordered by visit_date then visit_order.
	ListByItinerary(ctx context.Context, itineraryID uuid.UUID) ([]domain.Visit, error)

	// ReplaceAll swaps the itinerary's visit set for visits in one
	// transaction and bumps the itinerary's updated_at. The itinerary row is
	// locked first so concurrent saves serialize; the last writer wins.
	// Returns domain.ErrNotFound if the itinerary does not exist.
	ReplaceAll(ctx context.Context, itineraryID uuid.UUID, visits []domain.Visit) error
}

type pgVisitRepo struct {
	db db
}

// NewVisitRepo constructs a VisitRepo backed by the provided db connection.
func NewVisitRepo(db db) VisitRepo {
	return &pgVisitRepo{db: db}
}

func (r *pgVisitRepo) ListByItinerary(ctx context.Context, itineraryID uuid.UUID) ([]domain.Visit, error) {
	q := `
		SELECT v.id, v.itinerary_id, v.attraction_id, v.visit_date, v.visit_order, v.notes, v.created_at,
		       ` + attractionColumns + `
		FROM itinerary_items v
		JOIN attractions a ON a.id = v.attraction_id
		WHERE v.itinerary_id = @itinerary_id
		ORDER BY v.visit_date, v.visit_order`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"itinerary_id": itineraryID})
	if err != nil {
		return nil, fmt.Errorf("repo.VisitRepo.ListByItinerary: %w", err)
	}
	defer rows.Close()

	visits := []domain.Visit{}
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.VisitRepo.ListByItinerary: scan: %w", err)
		}
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.VisitRepo.ListByItinerary: rows: %w", err)
	}
	return visits, nil
}

func (r *pgVisitRepo) ReplaceAll(ctx context.Context, itineraryID uuid.UUID, visits []domain.Visit) error {
	args := pgx.NamedArgs{"id": itineraryID}

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var locked pgtype.UUID
		if err := tx.QueryRow(ctx, `SELECT id FROM itineraries WHERE id = @id FOR UPDATE`, args).Scan(&locked); err != nil {
			return notFound(err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM itinerary_items WHERE itinerary_id = @id`, args); err != nil {
			return fmt.Errorf("delete: %w", err)
		}
		if err := insertVisits(ctx, tx, itineraryID, visits); err != nil {
			return fmt.Errorf("insert: %w", err)
		}
		if _, err := tx.Exec(ctx, `UPDATE itineraries SET updated_at = now() WHERE id = @id`, args); err != nil {
			return fmt.Errorf("touch: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("repo.VisitRepo.ReplaceAll: %w", err)
	}
	return nil
}

func scanVisit(s scanner) (domain.Visit, error) {
	var (
		v                          domain.Visit
		id, itineraryID, attractID pgtype.UUID
		date                       pgtype.Date
	)
	attrDest, attrFinish := attractionDest(&v.Attraction)
	dest := append([]any{&id, &itineraryID, &attractID, &date, &v.VisitOrder, &v.Notes, &v.CreatedAt}, attrDest...)
	if err := s.Scan(dest...); err != nil {
		return domain.Visit{}, err
	}
	attrFinish()
	v.ID = uuid.UUID(id.Bytes)
	v.ItineraryID = uuid.UUID(itineraryID.Bytes)
	v.AttractionID = uuid.UUID(attractID.Bytes)
	v.VisitDate = date.Time
	return v, nil
}
