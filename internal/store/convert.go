package store

// convert.go bridges listing values and pgtype values. Listings arrive
// already validated, so a conversion miss here means a bug upstream, not
// bad user data.

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jobsheet/tracker/internal/listing"
)

// toPgTimestamptz parses a listing timestamp into a pgtype.Timestamptz.
// Returns invalid for input that does not match the listing layout.
func toPgTimestamptz(s string) pgtype.Timestamptz {
	t, err := time.Parse(listing.TimestampLayout, s)
	if err != nil {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// formatTimestamp renders a stored timestamp back in the listing layout,
// normalized to UTC. Invalid values render as empty.
func formatTimestamp(ts pgtype.Timestamptz) string {
	if !ts.Valid {
		return ""
	}
	return ts.Time.UTC().Format(listing.TimestampLayout)
}

// pgUUIDString converts a pgtype.UUID to its string representation.
// Returns empty string if the UUID is invalid.
func pgUUIDString(u pgtype.UUID) string {
	if !u.Valid {
		return ""
	}
	return uuid.UUID(u.Bytes).String()
}
