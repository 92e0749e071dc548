package scan

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewWatcher(t *testing.T) {
	config := DefaultWatcherConfig()
	config.Paths = []string{t.TempDir()}

	watcher, err := NewWatcher(config, nil)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v, want nil", err)
	}
	if watcher.watcher == nil {
		t.Error("watcher.watcher is nil")
	}
	if watcher.debounce == nil {
		t.Error("watcher.debounce is nil")
	}
	_ = watcher.Stop()
}

func TestDefaultWatcherConfig(t *testing.T) {
	config := DefaultWatcherConfig()

	if config.DebounceInterval != 200*time.Millisecond {
		t.Errorf("config.DebounceInterval = %v, want 200ms", config.DebounceInterval)
	}
	if len(config.Extensions) != 3 {
		t.Errorf("config.Extensions count = %d, want 3", len(config.Extensions))
	}
}

func TestWatcherDetectsWrite(t *testing.T) {
	tmpDir := t.TempDir()

	config := DefaultWatcherConfig()
	config.Paths = []string{tmpDir}
	config.DebounceInterval = 50 * time.Millisecond

	watcher, err := NewWatcher(config, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = watcher.Stop() }()

	changed := make(chan string, 10)
	onChange := func(path string) {
		select {
		case changed <- path:
		default:
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = watcher.Watch(ctx, onChange)
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	target := filepath.Join(tmpDir, "dsdt.aml")
	if err := os.WriteFile(target, validStream, 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case path := <-changed:
		if path != target {
			t.Errorf("changed path = %q, want %q", path, target)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for change notification")
	}
}

func TestWatcherReportsEveryFileInBurst(t *testing.T) {
	tmpDir := t.TempDir()

	config := DefaultWatcherConfig()
	config.Paths = []string{tmpDir}
	config.DebounceInterval = 50 * time.Millisecond

	watcher, err := NewWatcher(config, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = watcher.Stop() }()

	changed := make(chan string, 10)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = watcher.Watch(ctx, func(path string) { changed <- path })
	}()

	time.Sleep(100 * time.Millisecond)

	// Two different files written within one debounce window both get
	// re-parsed; debouncing is per path.
	a := filepath.Join(tmpDir, "a.aml")
	b := filepath.Join(tmpDir, "b.aml")
	if err := os.WriteFile(a, validStream, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, validStream, 0o644); err != nil {
		t.Fatal(err)
	}

	got := make(map[string]bool)
	timeout := time.After(2 * time.Second)
	for len(got) < 2 {
		select {
		case path := <-changed:
			got[path] = true
		case <-timeout:
			t.Fatalf("timeout; notified paths = %v, want both %q and %q", got, a, b)
		}
	}
}

func TestWatcherIgnoresOtherExtensions(t *testing.T) {
	tmpDir := t.TempDir()

	config := DefaultWatcherConfig()
	config.Paths = []string{tmpDir}
	config.DebounceInterval = 20 * time.Millisecond

	watcher, err := NewWatcher(config, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = watcher.Stop() }()

	var count atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = watcher.Watch(ctx, func(string) { count.Add(1) })
	}()

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(200 * time.Millisecond)

	if got := count.Load(); got != 0 {
		t.Errorf("change count = %d, want 0 for ignored extension", got)
	}
}

func TestDebouncerCollapsesBursts(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)
	defer d.Stop()

	var count atomic.Int32
	for i := 0; i < 5; i++ {
		d.Trigger("dsdt.aml", func() { count.Add(1) })
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)
	if got := count.Load(); got != 1 {
		t.Errorf("callback ran %d times, want 1", got)
	}
}

func TestDebouncerKeysAreIndependent(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)
	defer d.Stop()

	// A burst touching two files within the quiet period must fire a
	// callback for each, not just the last one triggered.
	var first, second atomic.Int32
	d.Trigger("a.aml", func() { first.Add(1) })
	d.Trigger("b.aml", func() { second.Add(1) })

	time.Sleep(150 * time.Millisecond)
	if got := first.Load(); got != 1 {
		t.Errorf("first callback ran %d times, want 1", got)
	}
	if got := second.Load(); got != 1 {
		t.Errorf("second callback ran %d times, want 1", got)
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var count atomic.Int32
	d.Trigger("dsdt.aml", func() { count.Add(1) })
	d.Stop()

	time.Sleep(150 * time.Millisecond)
	if got := count.Load(); got != 0 {
		t.Errorf("callback ran %d times after Stop, want 0", got)
	}
}
