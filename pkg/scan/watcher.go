package scan

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"mercator-hq/ganymede/pkg/telemetry/metrics"
)

// Watcher watches directories of firmware dumps and re-parses files as they
// change. Edits are debounced so a burst of writes triggers one re-parse.
type Watcher struct {
	watcher   *fsnotify.Watcher
	logger    *slog.Logger
	config    *WatcherConfig
	debounce  *Debouncer
	collector *metrics.Collector

	mu      sync.RWMutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// WatcherConfig contains the watcher settings.
type WatcherConfig struct {
	// Paths are the files or directories to watch.
	Paths []string

	// DebounceInterval is the quiet period after an event before the
	// changed file is re-parsed.
	DebounceInterval time.Duration

	// Extensions is the list of file extensions to react to.
	Extensions []string
}

// DefaultWatcherConfig returns the default watcher configuration.
func DefaultWatcherConfig() *WatcherConfig {
	return &WatcherConfig{
		DebounceInterval: 200 * time.Millisecond,
		Extensions:       []string{".aml", ".dat", ".bin"},
	}
}

// NewWatcher creates a watcher. The metrics collector may be nil.
func NewWatcher(config *WatcherConfig, collector *metrics.Collector) (*Watcher, error) {
	if config == nil {
		config = DefaultWatcherConfig()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		watcher:   watcher,
		logger:    slog.Default().With("component", "scan.watcher"),
		config:    config,
		debounce:  NewDebouncer(config.DebounceInterval),
		collector: collector,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}, nil
}

// Watch blocks processing filesystem events until the context is cancelled
// or Stop is called. onChange receives the path of each changed file after
// debouncing.
func (w *Watcher) Watch(ctx context.Context, onChange func(path string)) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		close(w.doneCh)
	}()

	for _, path := range w.config.Paths {
		if err := w.addPath(path); err != nil {
			return fmt.Errorf("failed to watch path: %w", err)
		}
	}

	w.logger.Info("watcher started",
		"paths", w.config.Paths,
		"debounce_ms", w.config.DebounceInterval.Milliseconds(),
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("watcher stopped (context cancelled)")
			return nil

		case <-w.stopCh:
			w.logger.Info("watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.shouldProcessEvent(event) {
				continue
			}

			w.logger.Debug("file event", "path", event.Name, "op", event.Op.String())
			if w.collector != nil {
				w.collector.RecordWatchEvent(event.Op.String())
			}

			// New subdirectories join the watch set immediately.
			if event.Op&fsnotify.Create == fsnotify.Create {
				if isDir, err := isDirectory(event.Name); err == nil && isDir {
					if err := w.addPath(event.Name); err != nil {
						w.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
					}
					continue
				}
			}

			changed := event.Name
			w.debounce.Trigger(changed, func() {
				onChange(changed)
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error("watcher error", "error", err)
		}
	}
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	w.debounce.Stop()

	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}
	return nil
}

func (w *Watcher) addPath(path string) error {
	isDir, err := isDirectory(path)
	if err != nil {
		return err
	}
	if isDir {
		return w.addDirectory(path)
	}
	return w.watcher.Add(path)
}

func (w *Watcher) addDirectory(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if err := w.watcher.Add(path); err != nil {
				return fmt.Errorf("failed to watch directory %q: %w", path, err)
			}
			w.logger.Debug("watching directory", "path", path)
		}
		return nil
	})
}

func (w *Watcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Op&fsnotify.Chmod == fsnotify.Chmod {
		return false
	}

	// Directory creation passes through so new subtrees get watched.
	if event.Op&fsnotify.Create == fsnotify.Create {
		if isDir, err := isDirectory(event.Name); err == nil && isDir {
			return true
		}
	}

	ext := strings.ToLower(filepath.Ext(event.Name))
	for _, want := range w.config.Extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}

func isDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
