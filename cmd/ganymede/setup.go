package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mercator-hq/ganymede/pkg/catalog/storage"
	"mercator-hq/ganymede/pkg/cli"
	"mercator-hq/ganymede/pkg/config"
	"mercator-hq/ganymede/pkg/telemetry/logging"
)

// loadConfig resolves the effective configuration. The default config file
// is optional; a path given explicitly with --config must exist.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	explicit := cmd.Flags().Changed("config") || cmd.InheritedFlags().Changed("config")

	if _, err := os.Stat(cfgFile); err != nil {
		if os.IsNotExist(err) && !explicit {
			cfg := config.DefaultConfig()
			applyVerbose(cfg)
			return cfg, nil
		}
		return nil, cli.NewConfigError("", fmt.Sprintf("config file %q: %v", cfgFile, err))
	}

	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return nil, cli.NewConfigError("", err.Error())
	}
	applyVerbose(cfg)
	return cfg, nil
}

func applyVerbose(cfg *config.Config) {
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}
}

// setupLogging installs the configured logger as the slog default.
func setupLogging(cfg *config.Config) error {
	_, err := logging.Setup(cfg.Telemetry.Logging)
	return err
}

// openStorage creates the catalog storage backend named in the config.
func openStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.Catalog.Backend {
	case "memory":
		return storage.NewMemoryStorage(), nil
	case "sqlite", "sqlite-pure", "":
		sqliteCfg := storage.DefaultSQLiteConfig()
		sqliteCfg.Path = cfg.Catalog.Path
		if cfg.Catalog.Backend == "sqlite-pure" {
			sqliteCfg.Driver = storage.DriverPure
		}
		if cfg.Catalog.BusyTimeout > 0 {
			sqliteCfg.BusyTimeout = cfg.Catalog.BusyTimeout
		}
		return storage.NewSQLiteStorage(sqliteCfg)
	default:
		return nil, cli.NewConfigError("catalog.backend",
			fmt.Sprintf("unknown backend %q", cfg.Catalog.Backend))
	}
}
