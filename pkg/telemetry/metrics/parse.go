package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ParseMetrics tracks outcomes of individual AML parses.
//
// Metrics:
//   - ganymede_aml_parses_total: parse count by status
//   - ganymede_aml_parse_duration_seconds: parse duration histogram by status
//   - ganymede_aml_parse_input_bytes: input size histogram
//   - ganymede_aml_parse_nodes: decoded tree size histogram
type ParseMetrics struct {
	parsesTotal   *prometheus.CounterVec
	parseDuration *prometheus.HistogramVec
	inputBytes    prometheus.Histogram
	treeNodes     prometheus.Histogram
}

// NewParseMetrics creates and registers parse metrics with the provided registry.
func NewParseMetrics(registry *prometheus.Registry) *ParseMetrics {
	pm := &ParseMetrics{
		parsesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "parses_total",
				Help:      "Total number of AML parses by outcome",
			},
			[]string{"status"},
		),

		parseDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "parse_duration_seconds",
				Help:      "Duration of AML parses in seconds",
				// Parses of firmware tables run in the sub-millisecond to
				// low-second range.
				Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1.0, 5.0},
			},
			[]string{"status"},
		),

		inputBytes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "parse_input_bytes",
				Help:      "Size of parsed AML inputs in bytes",
				Buckets:   prometheus.ExponentialBuckets(256, 4, 9), // 256B to 16MB
			},
		),

		treeNodes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "parse_nodes",
				Help:      "Number of nodes in successfully decoded trees",
				Buckets:   prometheus.ExponentialBuckets(16, 4, 9),
			},
		),
	}

	registry.MustRegister(
		pm.parsesTotal,
		pm.parseDuration,
		pm.inputBytes,
		pm.treeNodes,
	)

	return pm
}

// RecordParse records metrics for one completed parse.
func (pm *ParseMetrics) RecordParse(status string, duration time.Duration, inputBytes int64, nodes int) {
	pm.parsesTotal.WithLabelValues(status).Inc()
	pm.parseDuration.WithLabelValues(status).Observe(duration.Seconds())
	if inputBytes > 0 {
		pm.inputBytes.Observe(float64(inputBytes))
	}
	if nodes > 0 {
		pm.treeNodes.Observe(float64(nodes))
	}
}
