package health

import (
	"encoding/json"
	"net/http"
)

// LivenessHandler returns the handler for a liveness probe endpoint.
// It always answers 200 while the process runs.
func (c *Checker) LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, c.CheckLiveness(r.Context()), http.StatusOK)
	}
}

// ReadinessHandler returns the handler for a readiness probe endpoint.
// It runs every registered probe and answers 503 when any fails.
func (c *Checker) ReadinessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := c.CheckReadiness(r.Context())

		code := http.StatusOK
		if status.Status != "ok" {
			code = http.StatusServiceUnavailable
		}
		writeStatus(w, status, code)
	}
}

func writeStatus(w http.ResponseWriter, status Status, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(status)
}
