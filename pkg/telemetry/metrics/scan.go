package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ScanMetrics tracks scan runs and watch-mode filesystem events.
//
// Metrics:
//   - ganymede_aml_scan_runs_total: completed scan runs
//   - ganymede_aml_scan_files_total: files processed across all runs
//   - ganymede_aml_scan_duration_seconds: scan run duration histogram
//   - ganymede_aml_watch_events_total: watcher events by operation
type ScanMetrics struct {
	runsTotal    prometheus.Counter
	filesTotal   prometheus.Counter
	scanDuration prometheus.Histogram
	watchEvents  *prometheus.CounterVec
}

// NewScanMetrics creates and registers scan metrics with the provided registry.
func NewScanMetrics(registry *prometheus.Registry) *ScanMetrics {
	sm := &ScanMetrics{
		runsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "scan_runs_total",
				Help:      "Total number of completed scan runs",
			},
		),

		filesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "scan_files_total",
				Help:      "Total number of files processed by scan runs",
			},
		),

		scanDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "scan_duration_seconds",
				Help:      "Duration of scan runs in seconds",
				Buckets:   []float64{0.01, 0.1, 0.5, 1.0, 5.0, 30.0, 120.0},
			},
		),

		watchEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "watch_events_total",
				Help:      "Total number of filesystem events handled in watch mode",
			},
			[]string{"op"},
		),
	}

	registry.MustRegister(
		sm.runsTotal,
		sm.filesTotal,
		sm.scanDuration,
		sm.watchEvents,
	)

	return sm
}

// RecordRun records one completed scan run.
func (sm *ScanMetrics) RecordRun(files int, duration time.Duration) {
	sm.runsTotal.Inc()
	sm.filesTotal.Add(float64(files))
	sm.scanDuration.Observe(duration.Seconds())
}

// RecordWatchEvent records one handled filesystem event.
func (sm *ScanMetrics) RecordWatchEvent(op string) {
	sm.watchEvents.WithLabelValues(op).Inc()
}
