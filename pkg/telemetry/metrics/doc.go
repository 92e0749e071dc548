// Package metrics provides Prometheus metrics for parse outcomes, scan runs
// and watch-mode events.
//
// All metrics live under the ganymede_aml prefix and are registered on a
// private registry owned by the Collector. Recording is a no-op while
// metrics are disabled in configuration, so callers never need to guard
// their calls.
package metrics
