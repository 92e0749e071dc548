package config

import (
	"fmt"
	"strings"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "parser.max_depth").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
type ValidationError struct {
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, fe := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", fe.Error()))
	}
	return sb.String()
}

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
var validLogFormats = map[string]bool{"json": true, "text": true}
var validBackends = map[string]bool{"sqlite": true, "sqlite-pure": true, "memory": true}

// Validate checks the configuration for invalid values and returns a
// ValidationError describing every problem found, or nil.
func Validate(cfg *Config) error {
	var errs []FieldError

	if cfg.Parser.MaxDepth < 1 {
		errs = append(errs, FieldError{"parser.max_depth", "must be at least 1"})
	}
	if cfg.Parser.MaxInputBytes < 1 {
		errs = append(errs, FieldError{"parser.max_input_bytes", "must be at least 1"})
	}

	for i, ext := range cfg.Scan.Extensions {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("scan.extensions[%d]", i),
				Message: fmt.Sprintf("%q must start with a dot", ext),
			})
		}
	}
	if cfg.Scan.DebounceInterval < 0 {
		errs = append(errs, FieldError{"scan.debounce_interval", "must not be negative"})
	}

	if !validBackends[cfg.Catalog.Backend] {
		errs = append(errs, FieldError{"catalog.backend", fmt.Sprintf("unknown backend %q (want sqlite, sqlite-pure or memory)", cfg.Catalog.Backend)})
	}
	if strings.HasPrefix(cfg.Catalog.Backend, "sqlite") && cfg.Catalog.Path == "" {
		errs = append(errs, FieldError{"catalog.path", "required for the sqlite backends"})
	}
	if cfg.Catalog.Retention.Days != nil && *cfg.Catalog.Retention.Days < 0 {
		errs = append(errs, FieldError{"catalog.retention.days", "must not be negative"})
	}

	if !validLogLevels[cfg.Telemetry.Logging.Level] {
		errs = append(errs, FieldError{"telemetry.logging.level", fmt.Sprintf("unknown level %q", cfg.Telemetry.Logging.Level)})
	}
	if !validLogFormats[cfg.Telemetry.Logging.Format] {
		errs = append(errs, FieldError{"telemetry.logging.format", fmt.Sprintf("unknown format %q", cfg.Telemetry.Logging.Format)})
	}
	if cfg.Telemetry.Metrics.Enabled && cfg.Telemetry.Metrics.ListenAddress == "" {
		errs = append(errs, FieldError{"telemetry.metrics.listen_address", "required when metrics are enabled"})
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}
