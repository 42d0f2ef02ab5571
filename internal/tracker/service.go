// Package tracker composes the fetch, parse, and store layers into the
// sync service. It has no HTTP dependencies and can be driven by any
// frontend.
package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jobsheet/tracker/internal/listing"
	"github.com/jobsheet/tracker/internal/logging"
	"github.com/jobsheet/tracker/internal/store"
)

// Fetcher delivers the raw spreadsheet payload. Implemented by sheets.Client.
type Fetcher interface {
	FetchValues(ctx context.Context) (any, error)
}

// Snapshots persists and reads parsed listings. Implemented by store.Store.
type Snapshots interface {
	ReplaceListings(ctx context.Context, listings []listing.JobListing) (uuid.UUID, error)
	ListListings(ctx context.Context, opts store.ListOpts) ([]store.StoredListing, error)
}

// Service runs spreadsheet syncs and serves stored listings.
type Service struct {
	fetcher   Fetcher
	snapshots Snapshots
}

// New creates a Service from its collaborators.
func New(fetcher Fetcher, snapshots Snapshots) *Service {
	return &Service{fetcher: fetcher, snapshots: snapshots}
}

// SyncResult summarizes one completed sync run.
type SyncResult struct {
	SyncID   string    `json:"syncId"`
	Listings int       `json:"listings"`
	SyncedAt time.Time `json:"syncedAt"`
	Duration string    `json:"duration"`
}

// Sync fetches the sheet, parses it, and replaces the stored snapshot.
//
// A transport or storage failure is returned to the caller. Parse problems
// are not: the pipeline silently drops what it cannot use, so a sheet full
// of malformed rows syncs as an empty snapshot rather than an error.
func (s *Service) Sync(ctx context.Context) (SyncResult, error) {
	start := time.Now()
	log := logging.FromContext(ctx)

	payload, err := s.fetcher.FetchValues(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("fetch sheet: %w", err)
	}

	listings := listing.ParseJobListings(payload)

	syncID, err := s.snapshots.ReplaceListings(ctx, listings)
	if err != nil {
		return SyncResult{}, fmt.Errorf("store snapshot: %w", err)
	}

	result := SyncResult{
		SyncID:   syncID.String(),
		Listings: len(listings),
		SyncedAt: start.UTC(),
		Duration: time.Since(start).Round(time.Millisecond).String(),
	}
	log.Info("sheet sync complete",
		"sync_id", result.SyncID,
		"listings", result.Listings,
		"duration", result.Duration,
	)
	return result, nil
}

// Listings returns the stored snapshot.
func (s *Service) Listings(ctx context.Context, opts store.ListOpts) ([]store.StoredListing, error) {
	return s.snapshots.ListListings(ctx, opts)
}
