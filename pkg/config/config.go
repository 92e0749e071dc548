package config

import "time"

// Config is the root configuration structure for Ganymede. It contains all
// configuration sections for the decoding engine, directory scanning, the
// parse catalog, and telemetry.
type Config struct {
	// Parser contains the decoding engine limits applied to every parse.
	Parser ParserConfig `yaml:"parser"`

	// Scan contains configuration for batch scanning and watch mode.
	Scan ScanConfig `yaml:"scan"`

	// Catalog contains configuration for the parse catalog storage and
	// record retention.
	Catalog CatalogConfig `yaml:"catalog"`

	// Telemetry contains configuration for logging and metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ParserConfig contains the decoding engine limits. The inputs are untrusted
// firmware dumps, so both limits are hard fatal bounds, not hints.
type ParserConfig struct {
	// MaxDepth is the maximum grammar nesting depth before a parse is
	// aborted. Default: 128
	MaxDepth int `yaml:"max_depth"`

	// MaxInputBytes is the maximum input buffer size accepted by a parse.
	// Default: 16MiB
	MaxInputBytes int `yaml:"max_input_bytes"`
}

// ScanConfig contains configuration for batch scanning and watch mode.
type ScanConfig struct {
	// Extensions is the list of file extensions treated as AML input when
	// scanning a directory. Default: [".aml", ".dat", ".bin"]
	Extensions []string `yaml:"extensions"`

	// DebounceInterval is the time the watcher waits after a file event
	// before re-scanning, so editors that write in bursts trigger one
	// re-scan, not many. Default: 200ms
	DebounceInterval time.Duration `yaml:"debounce_interval"`

	// RescanSchedule is an optional cron expression for periodic full
	// re-scans in watch mode. Empty disables scheduled re-scans.
	RescanSchedule string `yaml:"rescan_schedule"`
}

// CatalogConfig contains configuration for the parse catalog.
type CatalogConfig struct {
	// Backend selects the storage backend: "sqlite" (cgo driver),
	// "sqlite-pure" (pure-Go driver) or "memory". Default: "sqlite"
	Backend string `yaml:"backend"`

	// Path is the SQLite database file path. Default: "data/catalog.db"
	Path string `yaml:"path"`

	// BusyTimeout is the duration to wait when the database is locked.
	// Default: 5s
	BusyTimeout time.Duration `yaml:"busy_timeout"`

	// Retention contains record retention settings.
	Retention RetentionConfig `yaml:"retention"`
}

// RetentionConfig controls pruning of old catalog records.
type RetentionConfig struct {
	// Days is the number of days to keep records. Zero keeps records
	// forever; leaving the field unset applies the default. Default: 90
	Days *int `yaml:"days"`

	// Schedule is the cron expression for automatic pruning.
	// Default: "0 3 * * *" (daily at 3 AM)
	Schedule string `yaml:"schedule"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging contains structured logging settings.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics settings.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn" or "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the output format: "json" or "text". Default: "text"
	Format string `yaml:"format"`
}

// MetricsConfig contains Prometheus metrics settings.
type MetricsConfig struct {
	// Enabled turns on the metrics listener in watch mode. Default: false
	Enabled bool `yaml:"enabled"`

	// ListenAddress is the address for the metrics HTTP listener.
	// Default: "127.0.0.1:9464"
	ListenAddress string `yaml:"listen_address"`
}
