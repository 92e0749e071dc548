// Package health provides liveness and readiness checks for the watch-mode
// HTTP listener. Components such as the catalog storage register a CheckFunc
// and the /readyz endpoint aggregates them.
package health
