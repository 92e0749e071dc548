package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any
// errors.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables follow the naming
// convention GANYMEDE_SECTION_FIELD (e.g., GANYMEDE_PARSER_MAX_DEPTH) and
// always take precedence over file-based configuration.
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the
// configuration.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("GANYMEDE_PARSER_MAX_DEPTH"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Parser.MaxDepth = n
		}
	}
	if val := os.Getenv("GANYMEDE_PARSER_MAX_INPUT_BYTES"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Parser.MaxInputBytes = n
		}
	}

	if val := os.Getenv("GANYMEDE_SCAN_EXTENSIONS"); val != "" {
		cfg.Scan.Extensions = strings.Split(val, ",")
	}
	if val := os.Getenv("GANYMEDE_SCAN_DEBOUNCE_INTERVAL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Scan.DebounceInterval = d
		}
	}
	if val := os.Getenv("GANYMEDE_SCAN_RESCAN_SCHEDULE"); val != "" {
		cfg.Scan.RescanSchedule = val
	}

	if val := os.Getenv("GANYMEDE_CATALOG_BACKEND"); val != "" {
		cfg.Catalog.Backend = val
	}
	if val := os.Getenv("GANYMEDE_CATALOG_PATH"); val != "" {
		cfg.Catalog.Path = val
	}
	if val := os.Getenv("GANYMEDE_CATALOG_RETENTION_DAYS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Catalog.Retention.Days = &n
		}
	}

	if val := os.Getenv("GANYMEDE_LOG_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("GANYMEDE_LOG_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv("GANYMEDE_METRICS_ENABLED"); val != "" {
		cfg.Telemetry.Metrics.Enabled = val == "true" || val == "1"
	}
	if val := os.Getenv("GANYMEDE_METRICS_LISTEN_ADDRESS"); val != "" {
		cfg.Telemetry.Metrics.ListenAddress = val
	}
}
