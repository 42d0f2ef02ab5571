// Package store persists parsed job listings in PostgreSQL.
//
// The spreadsheet is the source of truth: every sync writes a full snapshot
// of the parsed listings under a fresh sync ID, replacing the previous one.
package store

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobsheet/tracker/internal/listing"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	QueryRow(context.Context, string, ...any) pgx.Row
}

const schema = `
CREATE TABLE IF NOT EXISTS listings (
    id UUID PRIMARY KEY,
    sync_id UUID NOT NULL,
    company TEXT NOT NULL,
    job_title TEXT NOT NULL,
    location TEXT NOT NULL DEFAULT '',
    app_status TEXT NOT NULL,
    url TEXT NOT NULL DEFAULT '',
    notes TEXT NOT NULL DEFAULT '',
    date_submitted TIMESTAMPTZ NOT NULL,
    date_last_modified TIMESTAMPTZ NOT NULL,
    extra_fields JSONB NOT NULL DEFAULT '{}',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_listings_sync_id ON listings(sync_id);
CREATE INDEX IF NOT EXISTS idx_listings_app_status ON listings(app_status);
`

// Migrate creates the listings table and indexes if they do not exist.
func Migrate(ctx context.Context, db DBTX) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate listings: %w", err)
	}
	return nil
}

// Store provides access to persisted listings.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Store backed by the given connection pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

const insertListing = `
INSERT INTO listings (
    id, sync_id, company, job_title, location, app_status,
    url, notes, date_submitted, date_last_modified, extra_fields
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`

// ReplaceListings atomically replaces the stored snapshot with the given
// batch and returns the sync ID identifying it. An error leaves the previous
// snapshot untouched.
func (s *Store) ReplaceListings(ctx context.Context, listings []listing.JobListing) (uuid.UUID, error) {
	syncID := uuid.New()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("begin replace: %w", err)
	}
	defer tx.Rollback(ctx) // No-op if already committed

	if _, err := tx.Exec(ctx, `DELETE FROM listings`); err != nil {
		return uuid.Nil, fmt.Errorf("clear listings: %w", err)
	}

	for i, l := range listings {
		extras, err := json.Marshal(l.ExtraFields)
		if err != nil {
			return uuid.Nil, fmt.Errorf("marshal extra fields for row %d: %w", i, err)
		}

		_, err = tx.Exec(ctx, insertListing,
			uuid.New(), syncID,
			l.Company, l.JobTitle, l.Location, l.AppStatus,
			l.URL, l.Notes,
			toPgTimestamptz(l.DateSubmitted), toPgTimestamptz(l.DateLastModified),
			extras,
		)
		if err != nil {
			return uuid.Nil, fmt.Errorf("insert listing %d (%s): %w", i, l.Company, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("commit replace: %w", err)
	}
	return syncID, nil
}
