package stats

import (
	"encoding/json"
	"net/http"
	"time"
)

// StatsResponse is the JSON response for the stats endpoint.
type StatsResponse struct {
	Timestamp string     `json:"timestamp"`
	Caches    []Snapshot `json:"caches"`
}

// Handler returns an HTTP handler that reports a snapshot of every
// registered collector as JSON.
func Handler(reg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := StatsResponse{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Caches:    reg.Snapshots(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// SingleCacheHandler returns an HTTP handler that reports the snapshot
// of one named collector, or 404 if it is not registered.
func SingleCacheHandler(reg *Registry, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		for _, snap := range reg.Snapshots() {
			if snap.Name == name {
				w.WriteHeader(http.StatusOK)
				_ = json.NewEncoder(w).Encode(snap)
				return
			}
		}

		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error": "unknown cache: " + name,
		})
	}
}

// RegisterHandlers registers the stats handlers on the given mux.
func RegisterHandlers(mux *http.ServeMux, reg *Registry) {
	mux.HandleFunc("/stats", Handler(reg))
}
