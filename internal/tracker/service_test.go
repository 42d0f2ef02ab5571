package tracker

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/jobsheet/tracker/internal/listing"
	"github.com/jobsheet/tracker/internal/store"
)

type fakeFetcher struct {
	payload any
	err     error
}

func (f *fakeFetcher) FetchValues(ctx context.Context) (any, error) {
	return f.payload, f.err
}

type fakeSnapshots struct {
	replaced []listing.JobListing
	syncID   uuid.UUID
	err      error
}

func (f *fakeSnapshots) ReplaceListings(ctx context.Context, listings []listing.JobListing) (uuid.UUID, error) {
	f.replaced = listings
	return f.syncID, f.err
}

func (f *fakeSnapshots) ListListings(ctx context.Context, opts store.ListOpts) ([]store.StoredListing, error) {
	return nil, nil
}

func sheetPayload() map[string]any {
	header := []any{}
	for _, name := range listing.RequiredFieldNames() {
		header = append(header, name)
	}
	row := []any{
		"Acme", "Engineer", "Remote", "Applied",
		"https://acme.example/job", "",
		"2024-01-01T00:00:00.000Z", "2024-01-02T00:00:00.000Z",
	}
	bad := []any{"Globex"} // drops at validation, not at sync
	return map[string]any{"values": []any{header, row, bad}}
}

func TestSync(t *testing.T) {
	snapshots := &fakeSnapshots{syncID: uuid.New()}
	svc := New(&fakeFetcher{payload: sheetPayload()}, snapshots)

	result, err := svc.Sync(context.Background())
	if err != nil {
		t.Fatalf("Sync() error = %v", err)
	}

	if result.Listings != 1 {
		t.Errorf("result.Listings = %d, want 1", result.Listings)
	}
	if result.SyncID != snapshots.syncID.String() {
		t.Errorf("result.SyncID = %q, want %q", result.SyncID, snapshots.syncID)
	}
	if len(snapshots.replaced) != 1 || snapshots.replaced[0].Company != "Acme" {
		t.Errorf("stored snapshot = %+v, want the one valid listing", snapshots.replaced)
	}
}

func TestSync_FetchErrorSurfaces(t *testing.T) {
	fetchErr := errors.New("dial tcp: connection refused")
	svc := New(&fakeFetcher{err: fetchErr}, &fakeSnapshots{})

	_, err := svc.Sync(context.Background())
	if err == nil {
		t.Fatal("Sync() expected error when fetch fails")
	}
	if !errors.Is(err, fetchErr) {
		t.Errorf("Sync() error = %v, want wrapped fetch error", err)
	}
}

func TestSync_StoreErrorSurfaces(t *testing.T) {
	svc := New(
		&fakeFetcher{payload: sheetPayload()},
		&fakeSnapshots{err: errors.New("connection reset")},
	)

	if _, err := svc.Sync(context.Background()); err == nil {
		t.Fatal("Sync() expected error when store fails")
	}
}

func TestSync_MalformedSheetIsEmptyNotError(t *testing.T) {
	snapshots := &fakeSnapshots{syncID: uuid.New()}
	svc := New(&fakeFetcher{payload: map[string]any{"values": "garbage"}}, snapshots)

	result, err := svc.Sync(context.Background())
	if err != nil {
		t.Fatalf("Sync() error = %v, want nil for malformed sheet", err)
	}
	if result.Listings != 0 {
		t.Errorf("result.Listings = %d, want 0", result.Listings)
	}
	if snapshots.replaced == nil {
		t.Error("snapshot should be replaced with an empty batch, not skipped")
	}
	if len(snapshots.replaced) != 0 {
		t.Errorf("stored snapshot = %+v, want empty", snapshots.replaced)
	}
}
