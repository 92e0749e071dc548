package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"mercator-hq/ganymede/pkg/catalog/retention"
	"mercator-hq/ganymede/pkg/catalog/storage"
	"mercator-hq/ganymede/pkg/cli"
	"mercator-hq/ganymede/pkg/config"
	"mercator-hq/ganymede/pkg/scan"
	"mercator-hq/ganymede/pkg/telemetry/health"
	"mercator-hq/ganymede/pkg/telemetry/metrics"
)

var watchCmd = &cobra.Command{
	Use:   "watch PATH...",
	Short: "Keep directories under observation and re-parse on change",
	Long: `Watch directories of firmware dumps and re-parse files as they change.

An initial scan records the current state, then filesystem events trigger
re-parses of individual files. Optionally a cron schedule runs periodic full
re-scans, and a metrics listener exposes Prometheus metrics and health
endpoints.

Examples:
  # Watch one directory
  ganymede watch ./firmware

  # Watch with metrics enabled in the config
  ganymede watch --config prod.yaml ./firmware`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := setupLogging(cfg); err != nil {
		return err
	}
	logger := slog.Default().With("component", "watch")

	store, err := openStorage(cfg)
	if err != nil {
		return cli.NewCommandError("watch", err)
	}
	defer store.Close()

	var collector *metrics.Collector
	if cfg.Telemetry.Metrics.Enabled {
		collector = metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
	}

	scanner := scan.NewScanner(cfg, store, collector)
	ctx := cli.SetupSignalHandler()

	// Record the current state before watching for changes.
	if _, err := scanner.Scan(ctx, args...); err != nil {
		return cli.NewCommandError("watch", err)
	}

	retentionDays := 0
	if cfg.Catalog.Retention.Days != nil {
		retentionDays = *cfg.Catalog.Retention.Days
	}
	pruner := retention.NewPruner(store, &retention.Config{
		Days:     retentionDays,
		Schedule: cfg.Catalog.Retention.Schedule,
	})
	if err := pruner.Start(ctx); err != nil {
		return cli.NewCommandError("watch", err)
	}
	defer pruner.Stop()

	watchRunID := uuid.New().String()
	onChange := func(path string) {
		record := scanner.ScanFile(ctx, watchRunID, path)
		if err := store.Store(ctx, record); err != nil {
			logger.Error("failed to store record", "path", path, "error", err)
			return
		}
		logger.Info("re-parsed",
			"path", path,
			"status", record.Status,
			"nodes", record.NodeCount,
		)
	}

	watcher, err := scan.NewWatcher(&scan.WatcherConfig{
		Paths:            args,
		DebounceInterval: cfg.Scan.DebounceInterval,
		Extensions:       cfg.Scan.Extensions,
	}, collector)
	if err != nil {
		return cli.NewCommandError("watch", err)
	}

	rescanner := scan.NewRescanner(cfg.Scan.RescanSchedule, func() {
		if _, err := scanner.Scan(ctx, args...); err != nil {
			logger.Error("periodic rescan failed", "error", err)
		}
	})
	if err := rescanner.Start(); err != nil {
		return cli.NewCommandError("watch", err)
	}
	defer rescanner.Stop()

	if cfg.Telemetry.Metrics.Enabled {
		startMetricsListener(ctx, cfg, collector, store, logger)
	}

	if err := watcher.Watch(ctx, onChange); err != nil {
		return cli.NewCommandError("watch", err)
	}
	return nil
}

// startMetricsListener serves /metrics, /healthz and /readyz until the
// context is cancelled.
func startMetricsListener(ctx context.Context, cfg *config.Config, collector *metrics.Collector, store storage.Storage, logger *slog.Logger) {
	checker := health.New(0)
	checker.RegisterCheck("catalog", func(ctx context.Context) error {
		_, err := store.Count(ctx)
		return err
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())
	mux.Handle("/healthz", checker.LivenessHandler())
	mux.Handle("/readyz", checker.ReadinessHandler())

	server := &http.Server{
		Addr:              cfg.Telemetry.Metrics.ListenAddress,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("metrics listener started", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics listener failed", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()
}
