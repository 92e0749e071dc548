// Package telemetry provides observability for Ganymede.
//
// It is split into three subpackages:
//
//   - logging: structured logging built on log/slog, configured from the
//     telemetry.logging config section
//   - metrics: Prometheus metrics for parse outcomes and scan runs, exposed
//     over HTTP in watch mode
//   - health: liveness and readiness endpoints for the watch-mode listener
package telemetry
