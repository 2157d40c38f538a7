// Package repo contains all database access logic for the TripSmart API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Sahil-at-Work/TripSmart/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test. Begin on a
// pgx.Tx opens a savepoint, so multi-statement writes nest cleanly inside it.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan helpers
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// notFound maps pgx.ErrNoRows to domain.ErrNotFound and passes other errors through.
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

// insertVisits queues one INSERT per visit on a single round trip.
// Visits without an ID get a fresh one.
func insertVisits(ctx context.Context, tx pgx.Tx, itineraryID uuid.UUID, visits []domain.Visit) error {
	if len(visits) == 0 {
		return nil
	}

	const q = `
		INSERT INTO itinerary_items (id, itinerary_id, attraction_id, visit_date, visit_order, notes)
		VALUES (@id, @itinerary_id, @attraction_id, @visit_date, @visit_order, @notes)`

	b := &pgx.Batch{}
	for _, v := range visits {
		id := v.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		b.Queue(q, pgx.NamedArgs{
			"id":            id,
			"itinerary_id":  itineraryID,
			"attraction_id": v.AttractionID,
			"visit_date":    v.VisitDate,
			"visit_order":   v.VisitOrder,
			"notes":         v.Notes,
		})
	}
	return tx.SendBatch(ctx, b).Close()
}

// text converts a nullable text column to a Go string ("" for NULL).
func text(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}
