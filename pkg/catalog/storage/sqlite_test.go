package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"mercator-hq/ganymede/pkg/catalog"
)

func newTestSQLiteStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	config := DefaultSQLiteConfig()
	config.Path = filepath.Join(t.TempDir(), "catalog.db")
	store, err := NewSQLiteStorage(config)
	if err != nil {
		t.Fatalf("NewSQLiteStorage() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStorage(t)

	record := testRecord("run-1", "/firmware/dsdt.aml", catalog.StatusSyntax, time.Now())
	record.Error = "unexpected byte 0xff at offset 12"
	if err := store.Store(ctx, record); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	got, err := store.Query(ctx, catalog.Query{RunID: "run-1"})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Query() returned %d records, want 1", len(got))
	}

	r := got[0]
	if r.ID != record.ID {
		t.Errorf("ID = %q, want %q", r.ID, record.ID)
	}
	if r.Status != catalog.StatusSyntax {
		t.Errorf("Status = %q, want %q", r.Status, catalog.StatusSyntax)
	}
	if r.Error != record.Error {
		t.Errorf("Error = %q, want %q", r.Error, record.Error)
	}
	if r.Duration != record.Duration {
		t.Errorf("Duration = %v, want %v", r.Duration, record.Duration)
	}
}

func TestSQLiteStorageQueryFilters(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStorage(t)

	now := time.Now()
	seed := []*catalog.Record{
		testRecord("run-1", "/firmware/dsdt.aml", catalog.StatusOK, now.Add(-2*time.Hour)),
		testRecord("run-1", "/firmware/ssdt1.aml", catalog.StatusDepth, now.Add(-time.Hour)),
		testRecord("run-2", "/boot/dsdt.aml", catalog.StatusOK, now),
	}
	for _, r := range seed {
		if err := store.Store(ctx, r); err != nil {
			t.Fatalf("Store() error = %v", err)
		}
	}

	tests := []struct {
		name  string
		query catalog.Query
		want  int
	}{
		{"all", catalog.Query{}, 3},
		{"by run", catalog.Query{RunID: "run-1"}, 2},
		{"by status", catalog.Query{Status: catalog.StatusOK}, 2},
		{"by path prefix", catalog.Query{PathPrefix: "/firmware/"}, 2},
		{"by since", catalog.Query{Since: now.Add(-90 * time.Minute)}, 2},
		{"with limit", catalog.Query{Limit: 1}, 1},
		{"no match", catalog.Query{RunID: "run-9"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.Query(ctx, tt.query)
			if err != nil {
				t.Fatalf("Query() error = %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("Query() returned %d records, want %d", len(got), tt.want)
			}
		})
	}
}

func TestSQLiteStorageDeleteOlderThan(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStorage(t)

	now := time.Now()
	old := testRecord("run-1", "/firmware/old.aml", catalog.StatusOK, now.Add(-72*time.Hour))
	fresh := testRecord("run-1", "/firmware/fresh.aml", catalog.StatusOK, now)
	for _, r := range []*catalog.Record{old, fresh} {
		if err := store.Store(ctx, r); err != nil {
			t.Fatalf("Store() error = %v", err)
		}
	}

	deleted, err := store.DeleteOlderThan(ctx, now.Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("DeleteOlderThan() error = %v", err)
	}
	if deleted != 1 {
		t.Errorf("DeleteOlderThan() = %d, want 1", deleted)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 1 {
		t.Errorf("Count() = %d, want 1", count)
	}
}

func TestSQLiteStoragePureDriver(t *testing.T) {
	ctx := context.Background()
	config := DefaultSQLiteConfig()
	config.Path = filepath.Join(t.TempDir(), "catalog.db")
	config.Driver = DriverPure

	store, err := NewSQLiteStorage(config)
	if err != nil {
		t.Fatalf("NewSQLiteStorage() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	record := testRecord("run-1", "/firmware/dsdt.aml", catalog.StatusOK, time.Now())
	if err := store.Store(ctx, record); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	got, err := store.Query(ctx, catalog.Query{RunID: "run-1"})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != record.ID {
		t.Fatalf("Query() = %v, want the stored record", got)
	}
}

func TestSQLiteStorageSchemaVersion(t *testing.T) {
	dir := t.TempDir()
	config := DefaultSQLiteConfig()
	config.Path = filepath.Join(dir, "catalog.db")

	store, err := NewSQLiteStorage(config)
	if err != nil {
		t.Fatalf("NewSQLiteStorage() error = %v", err)
	}
	store.Close()

	// Reopening an existing catalog verifies the recorded schema version.
	store, err = NewSQLiteStorage(config)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	store.Close()
}
