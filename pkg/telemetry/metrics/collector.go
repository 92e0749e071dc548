package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"mercator-hq/ganymede/pkg/config"
)

const (
	namespace = "ganymede"
	subsystem = "aml"
)

// Collector owns the Prometheus registry and all Ganymede metrics. It is the
// single interface components use to record parse and scan outcomes.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	parseMetrics *ParseMetrics
	scanMetrics  *ScanMetrics
}

// NewCollector creates a metrics collector backed by the given registry.
// A nil registry gets a fresh private one.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	return &Collector{
		config:       cfg,
		registry:     registry,
		parseMetrics: NewParseMetrics(registry),
		scanMetrics:  NewScanMetrics(registry),
	}
}

// RecordParse records the outcome of one parse: its status label, duration,
// input size and decoded node count.
func (c *Collector) RecordParse(status string, duration time.Duration, inputBytes int64, nodes int) {
	if !c.config.Enabled {
		return
	}
	c.parseMetrics.RecordParse(status, duration, inputBytes, nodes)
}

// RecordScanRun records a completed scan run and how many files it covered.
func (c *Collector) RecordScanRun(files int, duration time.Duration) {
	if !c.config.Enabled {
		return
	}
	c.scanMetrics.RecordRun(files, duration)
}

// RecordWatchEvent records one filesystem event handled by the watcher.
func (c *Collector) RecordWatchEvent(op string) {
	if !c.config.Enabled {
		return
	}
	c.scanMetrics.RecordWatchEvent(op)
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
