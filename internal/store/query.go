package store

import (
	"context"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jobsheet/tracker/internal/listing"
)

// StoredListing is a persisted listing with its storage identity.
type StoredListing struct {
	ID     string `json:"id"`
	SyncID string `json:"syncId"`
	listing.JobListing
	CreatedAt time.Time `json:"createdAt"`
}

// ListOpts narrows a listings query.
type ListOpts struct {
	Status string // filter on appStatus; empty for all
	Limit  int    // defaults to 500, capped at 1000
}

// ListListings returns the stored snapshot, newest submissions first.
func (s *Store) ListListings(ctx context.Context, opts ListOpts) ([]StoredListing, error) {
	if opts.Limit <= 0 || opts.Limit > 1000 {
		opts.Limit = 500
	}

	query := `
SELECT id, sync_id, company, job_title, location, app_status,
       url, notes, date_submitted, date_last_modified, extra_fields, created_at
FROM listings`
	var args []any
	if opts.Status != "" {
		query += ` WHERE app_status = $1`
		args = append(args, opts.Status)
	}
	query += fmt.Sprintf(` ORDER BY date_submitted DESC LIMIT %d`, opts.Limit)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query listings: %w", err)
	}
	defer rows.Close()

	var out []StoredListing
	for rows.Next() {
		var (
			l          StoredListing
			id, syncID pgtype.UUID
			submitted  pgtype.Timestamptz
			modified   pgtype.Timestamptz
			extras     []byte
		)
		if err := rows.Scan(
			&id, &syncID,
			&l.Company, &l.JobTitle, &l.Location, &l.AppStatus,
			&l.URL, &l.Notes, &submitted, &modified, &extras, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}

		l.ID = pgUUIDString(id)
		l.SyncID = pgUUIDString(syncID)
		l.DateSubmitted = formatTimestamp(submitted)
		l.DateLastModified = formatTimestamp(modified)
		l.ExtraFields = map[string]any{}
		if len(extras) > 0 {
			if err := json.Unmarshal(extras, &l.ExtraFields); err != nil {
				return nil, fmt.Errorf("decode extra fields for %s: %w", l.ID, err)
			}
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate listings: %w", err)
	}
	return out, nil
}

// CountListings returns the number of stored listings.
func (s *Store) CountListings(ctx context.Context) (int64, error) {
	var n int64
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM listings`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count listings: %w", err)
	}
	return n, nil
}
