package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"mercator-hq/ganymede/pkg/catalog"
)

// Registered database/sql driver names for the two SQLite implementations.
const (
	// DriverCgo is the cgo driver (github.com/mattn/go-sqlite3).
	DriverCgo = "sqlite3"

	// DriverPure is the pure-Go driver (modernc.org/sqlite), for builds
	// where cgo is unavailable.
	DriverPure = "sqlite"
)

// SQLiteConfig contains configuration for the SQLite storage backend.
type SQLiteConfig struct {
	// Path is the database file path.
	Path string

	// Driver selects the SQLite implementation, DriverCgo or DriverPure.
	// Default: DriverCgo
	Driver string

	// WALMode enables Write-Ahead Logging mode. Default: true
	WALMode bool

	// BusyTimeout is the duration to wait when the database is locked.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// DefaultSQLiteConfig returns the default SQLite configuration.
func DefaultSQLiteConfig() *SQLiteConfig {
	return &SQLiteConfig{
		Path:        "data/catalog.db",
		Driver:      DriverCgo,
		WALMode:     true,
		BusyTimeout: 5 * time.Second,
	}
}

// SQLiteStorage implements the Storage interface using SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	config *SQLiteConfig
	logger *slog.Logger
}

// NewSQLiteStorage creates a new SQLite storage backend. It initializes the
// database schema and enables WAL mode if configured.
func NewSQLiteStorage(config *SQLiteConfig) (*SQLiteStorage, error) {
	if config == nil {
		config = DefaultSQLiteConfig()
	}

	logger := slog.Default().With("component", "catalog.storage.sqlite")

	driver := config.Driver
	if driver == "" {
		driver = DriverCgo
	}
	db, err := sql.Open(driver, config.Path)
	if err != nil {
		return nil, catalog.NewStorageError("sqlite", "open", err)
	}

	s := &SQLiteStorage{
		db:     db,
		config: config,
		logger: logger,
	}

	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("SQLite catalog storage initialized",
		"path", config.Path,
		"driver", driver,
		"wal_mode", config.WALMode,
	)

	return s, nil
}

// initialize sets up the database schema and enables WAL mode.
func (s *SQLiteStorage) initialize() error {
	if s.config.WALMode {
		if _, err := s.db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			return catalog.NewStorageError("sqlite", "enable_wal", err)
		}
	}

	busyTimeoutMs := s.config.BusyTimeout.Milliseconds()
	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA busy_timeout=%d;", busyTimeoutMs)); err != nil {
		return catalog.NewStorageError("sqlite", "set_busy_timeout", err)
	}

	if _, err := s.db.Exec(Schema); err != nil {
		return catalog.NewStorageError("sqlite", "create_schema", err)
	}

	if _, err := s.db.Exec(InsertSchemaVersion, SchemaVersion); err != nil {
		return catalog.NewStorageError("sqlite", "insert_schema_version", err)
	}

	var version int
	err := s.db.QueryRow(GetSchemaVersion).Scan(&version)
	if err != nil && err != sql.ErrNoRows {
		return catalog.NewStorageError("sqlite", "get_schema_version", err)
	}
	if version != SchemaVersion {
		return catalog.NewStorageError("sqlite", "schema_version_mismatch",
			fmt.Errorf("expected schema version %d, got %d", SchemaVersion, version))
	}

	return nil
}

// Store persists a record.
func (s *SQLiteStorage) Store(ctx context.Context, record *catalog.Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO parse_records
		(id, run_id, path, size, status, error, node_count, tree_depth, duration_us, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.RunID,
		record.Path,
		record.Size,
		string(record.Status),
		record.Error,
		record.NodeCount,
		record.TreeDepth,
		record.Duration.Microseconds(),
		record.RecordedAt.UTC(),
	)
	if err != nil {
		return catalog.NewStorageError("sqlite", "store", err)
	}
	return nil
}

// Query returns records matching the query, newest first.
func (s *SQLiteStorage) Query(ctx context.Context, q catalog.Query) ([]*catalog.Record, error) {
	var (
		conds []string
		args  []interface{}
	)

	if q.RunID != "" {
		conds = append(conds, "run_id = ?")
		args = append(args, q.RunID)
	}
	if q.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, string(q.Status))
	}
	if q.PathPrefix != "" {
		conds = append(conds, "path LIKE ?")
		args = append(args, q.PathPrefix+"%")
	}
	if !q.Since.IsZero() {
		conds = append(conds, "recorded_at >= ?")
		args = append(args, q.Since.UTC())
	}

	query := `SELECT id, run_id, path, size, status, error, node_count, tree_depth, duration_us, recorded_at
		FROM parse_records`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY recorded_at DESC"
	if q.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, catalog.NewStorageError("sqlite", "query", err)
	}
	defer rows.Close()

	var out []*catalog.Record
	for rows.Next() {
		var (
			r          catalog.Record
			status     string
			durationUs int64
		)
		err := rows.Scan(&r.ID, &r.RunID, &r.Path, &r.Size, &status, &r.Error,
			&r.NodeCount, &r.TreeDepth, &durationUs, &r.RecordedAt)
		if err != nil {
			return nil, catalog.NewStorageError("sqlite", "scan", err)
		}
		r.Status = catalog.Status(status)
		r.Duration = time.Duration(durationUs) * time.Microsecond
		out = append(out, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, catalog.NewStorageError("sqlite", "iterate", err)
	}
	return out, nil
}

// Count returns the total number of stored records.
func (s *SQLiteStorage) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM parse_records").Scan(&count)
	if err != nil {
		return 0, catalog.NewStorageError("sqlite", "count", err)
	}
	return count, nil
}

// DeleteOlderThan removes records stored before cutoff.
func (s *SQLiteStorage) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM parse_records WHERE recorded_at < ?", cutoff.UTC())
	if err != nil {
		return 0, catalog.NewStorageError("sqlite", "delete", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, catalog.NewStorageError("sqlite", "rows_affected", err)
	}
	if deleted > 0 {
		s.logger.Info("pruned catalog records", "deleted", deleted, "cutoff", cutoff)
	}
	return deleted, nil
}

// Close releases the database handle.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
