package config

import "time"

// Default values for configuration fields.
const (
	// Parser defaults
	DefaultMaxDepth      = 128
	DefaultMaxInputBytes = 16 * 1024 * 1024

	// Scan defaults
	DefaultDebounceInterval = 200 * time.Millisecond

	// Catalog defaults
	DefaultCatalogBackend     = "sqlite"
	DefaultCatalogPath        = "data/catalog.db"
	DefaultCatalogBusyTimeout = 5 * time.Second
	DefaultRetentionDays      = 90
	DefaultRetentionSchedule  = "0 3 * * *"

	// Telemetry defaults
	DefaultLogLevel             = "info"
	DefaultLogFormat            = "text"
	DefaultMetricsListenAddress = "127.0.0.1:9464"
)

// DefaultScanExtensions are the file extensions scanned by default.
var DefaultScanExtensions = []string{".aml", ".dat", ".bin"}

// ApplyDefaults fills in default values for any zero-valued configuration
// fields.
func ApplyDefaults(cfg *Config) {
	if cfg.Parser.MaxDepth == 0 {
		cfg.Parser.MaxDepth = DefaultMaxDepth
	}
	if cfg.Parser.MaxInputBytes == 0 {
		cfg.Parser.MaxInputBytes = DefaultMaxInputBytes
	}

	if len(cfg.Scan.Extensions) == 0 {
		cfg.Scan.Extensions = append([]string(nil), DefaultScanExtensions...)
	}
	if cfg.Scan.DebounceInterval == 0 {
		cfg.Scan.DebounceInterval = DefaultDebounceInterval
	}

	if cfg.Catalog.Backend == "" {
		cfg.Catalog.Backend = DefaultCatalogBackend
	}
	if cfg.Catalog.Path == "" {
		cfg.Catalog.Path = DefaultCatalogPath
	}
	if cfg.Catalog.BusyTimeout == 0 {
		cfg.Catalog.BusyTimeout = DefaultCatalogBusyTimeout
	}
	if cfg.Catalog.Retention.Days == nil {
		days := DefaultRetentionDays
		cfg.Catalog.Retention.Days = &days
	}
	if cfg.Catalog.Retention.Schedule == "" {
		cfg.Catalog.Retention.Schedule = DefaultRetentionSchedule
	}

	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLogLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLogFormat
	}
	if cfg.Telemetry.Metrics.ListenAddress == "" {
		cfg.Telemetry.Metrics.ListenAddress = DefaultMetricsListenAddress
	}
}

// DefaultConfig returns a configuration with all defaults applied.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
