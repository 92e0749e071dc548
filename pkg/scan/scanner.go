package scan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"mercator-hq/ganymede/pkg/aml/ast"
	amlErrors "mercator-hq/ganymede/pkg/aml/errors"
	"mercator-hq/ganymede/pkg/aml/grammar"
	"mercator-hq/ganymede/pkg/aml/parser"
	"mercator-hq/ganymede/pkg/catalog"
	"mercator-hq/ganymede/pkg/catalog/storage"
	"mercator-hq/ganymede/pkg/config"
	"mercator-hq/ganymede/pkg/telemetry/metrics"
)

// Scanner walks directories of firmware dumps, decodes every AML file it
// finds and records the outcome in the parse catalog.
//
// A Scanner is safe for concurrent use; parses are serialized because the
// underlying Parser is single-threaded.
type Scanner struct {
	mu         sync.Mutex
	parser     *parser.Parser
	store      storage.Storage
	collector  *metrics.Collector
	logger     *slog.Logger
	extensions []string
	progress   ProgressReporter
}

// Summary aggregates the outcome of one scan run.
type Summary struct {
	// RunID identifies the run; every record it produced carries it.
	RunID string

	// Files is the number of files processed.
	Files int

	// ByStatus counts files per parse outcome.
	ByStatus map[catalog.Status]int

	// Duration is the wall-clock time of the run.
	Duration time.Duration
}

// NewScanner creates a scanner. The metrics collector may be nil when
// metrics are not wired, as in one-shot CLI commands.
func NewScanner(cfg *config.Config, store storage.Storage, collector *metrics.Collector) *Scanner {
	p := parser.NewParser().
		WithMaxDepth(cfg.Parser.MaxDepth).
		WithMaxInput(cfg.Parser.MaxInputBytes)

	return &Scanner{
		parser:     p,
		store:      store,
		collector:  collector,
		logger:     slog.Default().With("component", "scan"),
		extensions: cfg.Scan.Extensions,
	}
}

// ProgressReporter receives scan progress. cli.ProgressReporter satisfies it.
type ProgressReporter interface {
	Start(total int64)
	Update(current int64)
	Finish()
}

// WithProgress attaches a progress reporter to subsequent Scan calls.
func (s *Scanner) WithProgress(p ProgressReporter) *Scanner {
	s.progress = p
	return s
}

// Scan walks the given roots, parses every file with a matching extension
// and stores one record per file. A root may also be a single file.
func (s *Scanner) Scan(ctx context.Context, roots ...string) (*Summary, error) {
	start := time.Now()
	summary := &Summary{
		RunID:    uuid.New().String(),
		ByStatus: make(map[catalog.Status]int),
	}

	paths, err := s.collectFiles(roots)
	if err != nil {
		return nil, err
	}

	s.logger.Info("scan started",
		"run_id", summary.RunID,
		"roots", roots,
		"files", len(paths),
	)
	if s.progress != nil {
		s.progress.Start(int64(len(paths)))
	}

	for i, path := range paths {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if err := s.scanOne(ctx, summary, path); err != nil {
			return nil, err
		}
		if s.progress != nil {
			s.progress.Update(int64(i + 1))
		}
	}

	if s.progress != nil {
		s.progress.Finish()
	}
	summary.Duration = time.Since(start)
	if s.collector != nil {
		s.collector.RecordScanRun(summary.Files, summary.Duration)
	}

	s.logger.Info("scan complete",
		"run_id", summary.RunID,
		"files", summary.Files,
		"ok", summary.ByStatus[catalog.StatusOK],
		"duration", summary.Duration,
	)
	return summary, nil
}

// collectFiles resolves the roots into the ordered list of files to parse.
func (s *Scanner) collectFiles(roots []string) ([]string, error) {
	var paths []string
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("stat %q: %w", root, err)
		}

		if !info.IsDir() {
			paths = append(paths, root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !s.matchesExtension(path) {
				return nil
			}
			paths = append(paths, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return paths, nil
}

func (s *Scanner) scanOne(ctx context.Context, summary *Summary, path string) error {
	record := s.ScanFile(ctx, summary.RunID, path)
	if err := s.store.Store(ctx, record); err != nil {
		return fmt.Errorf("store record for %q: %w", path, err)
	}
	summary.Files++
	summary.ByStatus[record.Status]++
	return nil
}

// ScanFile decodes a single file and builds its catalog record. Parse
// failures are captured in the record, not returned: a broken input is a
// scan result, not a scan error.
func (s *Scanner) ScanFile(ctx context.Context, runID, path string) *catalog.Record {
	record := &catalog.Record{
		ID:         uuid.New().String(),
		RunID:      runID,
		Path:       path,
		RecordedAt: time.Now(),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		record.Status = catalog.StatusIO
		record.Error = err.Error()
		s.logger.Warn("file unreadable", "path", path, "error", err)
		return record
	}
	record.Size = int64(len(data))

	s.mu.Lock()
	start := time.Now()
	node, err := s.parser.ParseNamed(data, path, grammar.DataStream)
	record.Duration = time.Since(start)

	if err != nil {
		record.Status = statusFor(err)
		record.Error = err.Error()
		s.logger.Debug("parse failed",
			"path", path,
			"status", record.Status,
			"error", err,
		)
	} else {
		record.Status = catalog.StatusOK
		record.NodeCount = node.Count()
		record.TreeDepth = node.Depth()
		ast.ReleaseDeep(s.parser.Allocator(), node)
	}
	s.mu.Unlock()

	if s.collector != nil {
		s.collector.RecordParse(string(record.Status), record.Duration, record.Size, record.NodeCount)
	}
	return record
}

func (s *Scanner) matchesExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range s.extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}

// statusFor maps an engine error to a catalog status.
func statusFor(err error) catalog.Status {
	var amlErr *amlErrors.Error
	if !errors.As(err, &amlErr) {
		return catalog.StatusSyntax
	}
	switch amlErr.Type {
	case amlErrors.ErrorTypeTruncated:
		return catalog.StatusTruncated
	case amlErrors.ErrorTypeResource:
		return catalog.StatusResource
	case amlErrors.ErrorTypeDepth:
		return catalog.StatusDepth
	case amlErrors.ErrorTypeIO:
		return catalog.StatusIO
	default:
		return catalog.StatusSyntax
	}
}
