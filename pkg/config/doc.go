// Package config provides configuration loading, defaults, validation and
// environment variable overrides for Ganymede.
//
// Configuration is loaded from a YAML file, zero-valued fields are filled
// with defaults, and GANYMEDE_* environment variables override file values.
//
// # Basic Usage
//
//	cfg, err := config.LoadConfigWithEnvOverrides("config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
