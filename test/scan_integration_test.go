package test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mercator-hq/ganymede/pkg/catalog"
	"mercator-hq/ganymede/pkg/catalog/retention"
	"mercator-hq/ganymede/pkg/catalog/storage"
	"mercator-hq/ganymede/pkg/config"
	"mercator-hq/ganymede/pkg/scan"
)

// TestScanToCatalogRoundTrip drives the full pipeline: scan a directory of
// AML dumps into a SQLite catalog, query the outcomes back and prune.
func TestScanToCatalogRoundTrip(t *testing.T) {
	ctx := context.Background()

	// One well-formed stream, one cut off mid-encoding.
	inputDir := t.TempDir()
	good := []byte{0x0a, 0x42, 0x0b, 0x34, 0x12, 0x00, 0x01, 0xff}
	bad := []byte{0x0a} // byte prefix with no data byte
	if err := os.WriteFile(filepath.Join(inputDir, "dsdt.aml"), good, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(inputDir, "ssdt1.aml"), bad, 0o644); err != nil {
		t.Fatal(err)
	}

	sqliteCfg := storage.DefaultSQLiteConfig()
	sqliteCfg.Path = filepath.Join(t.TempDir(), "catalog.db")
	store, err := storage.NewSQLiteStorage(sqliteCfg)
	if err != nil {
		t.Fatalf("NewSQLiteStorage() error = %v", err)
	}
	defer store.Close()

	scanner := scan.NewScanner(config.DefaultConfig(), store, nil)
	summary, err := scanner.Scan(ctx, inputDir)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if summary.Files != 2 {
		t.Fatalf("Files = %d, want 2", summary.Files)
	}
	if summary.ByStatus[catalog.StatusOK] != 1 {
		t.Errorf("ok = %d, want 1", summary.ByStatus[catalog.StatusOK])
	}
	if summary.ByStatus[catalog.StatusTruncated] != 1 {
		t.Errorf("truncated = %d, want 1", summary.ByStatus[catalog.StatusTruncated])
	}

	// The ok record carries the decoded tree shape.
	okRecords, err := store.Query(ctx, catalog.Query{Status: catalog.StatusOK})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(okRecords) != 1 {
		t.Fatalf("ok records = %d, want 1", len(okRecords))
	}
	if okRecords[0].NodeCount == 0 || okRecords[0].TreeDepth == 0 {
		t.Errorf("tree shape missing: nodes=%d depth=%d",
			okRecords[0].NodeCount, okRecords[0].TreeDepth)
	}

	// A fresh catalog survives pruning untouched.
	pruner := retention.NewPruner(store, &retention.Config{Days: 30})
	deleted, err := pruner.Prune(ctx)
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if deleted != 0 {
		t.Errorf("Prune() deleted %d fresh records", deleted)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 2 {
		t.Errorf("Count() = %d, want 2", count)
	}
}

// TestWatcherReparsesChangedFile drives the watcher against a real
// directory: a file write lands as a catalog record after debouncing.
func TestWatcherReparsesChangedFile(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	inputDir := t.TempDir()
	store := storage.NewMemoryStorage()
	defer store.Close()

	cfg := config.DefaultConfig()
	scanner := scan.NewScanner(cfg, store, nil)

	watcher, err := scan.NewWatcher(&scan.WatcherConfig{
		Paths:            []string{inputDir},
		DebounceInterval: 50 * time.Millisecond,
		Extensions:       cfg.Scan.Extensions,
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = watcher.Stop() }()

	stored := make(chan struct{}, 1)
	go func() {
		_ = watcher.Watch(ctx, func(path string) {
			record := scanner.ScanFile(ctx, "watch-run", path)
			if err := store.Store(ctx, record); err != nil {
				t.Errorf("Store() error = %v", err)
			}
			select {
			case stored <- struct{}{}:
			default:
			}
		})
	}()

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(inputDir, "dsdt.aml"), []byte{0x00, 0x01}, 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-stored:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for the watcher to record the change")
	}

	records, err := store.Query(ctx, catalog.Query{RunID: "watch-run"})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(records) == 0 {
		t.Fatal("no record stored for the changed file")
	}
	if records[0].Status != catalog.StatusOK {
		t.Errorf("Status = %q, want ok (error: %s)", records[0].Status, records[0].Error)
	}
}
