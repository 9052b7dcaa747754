// Package health serves liveness and service-info endpoints.
package health

import (
	"encoding/json"
	"net/http"
)

// Liveness is the bare check for load balancers.
func Liveness() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

// Root reports service identity alongside the status.
func Root(service, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":  "ok",
			"service": service,
			"version": version,
		})
	}
}
