package health

import (
	"encoding/json"
	"net/http"
)

// LivenessHandler returns the HTTP handler for /healthz. It always responds
// 200 while the process is up.
func (c *Checker) LivenessHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, c.CheckLiveness(r.Context()))
	})
}

// ReadinessHandler returns the HTTP handler for /readyz. It responds 503
// when any component check fails.
func (c *Checker) ReadinessHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := c.CheckReadiness(r.Context())
		code := http.StatusOK
		if status.Status == "unhealthy" {
			code = http.StatusServiceUnavailable
		}
		writeStatus(w, code, status)
	})
}

func writeStatus(w http.ResponseWriter, code int, status Status) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(status)
}
