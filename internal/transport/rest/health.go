package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"time"
)

const probeTimeout = 3 * time.Second

// Check probes one dependency. A nil error means the dependency is usable.
type Check func(ctx context.Context) error

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	checks  map[string]Check
	ready   []string
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler. Checks named in ready gate the
// readiness probe; all checks are reported by Health.
func NewHealthHandler(version string, checks map[string]Check, ready ...string) *HealthHandler {
	return &HealthHandler{
		checks:  checks,
		ready:   ready,
		version: version,
		now:     time.Now,
	}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: h.now(),
	})
}

// Ready is the readiness probe over the ready checks: 200 if all pass, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	for _, name := range h.ready {
		check, ok := h.checks[name]
		if !ok {
			continue
		}
		if err := check(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:    "down",
				Timestamp: h.now(),
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: h.now(),
	})
}

// Health runs every check with latency measurement and includes the version.
// Only a failing ready check turns the overall status down; other failures
// report "degraded".
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	components := make(map[string]CompStatus, len(names))
	overall := "ok"
	for _, name := range names {
		start := time.Now()
		err := h.checks[name](ctx)
		latency := time.Since(start)

		if err == nil {
			components[name] = CompStatus{Status: "ok", Latency: latency.String()}
			continue
		}
		components[name] = CompStatus{Status: "down", Error: err.Error()}
		switch {
		case h.gates(name):
			overall = "down"
		case overall == "ok":
			overall = "degraded"
		}
	}

	status := http.StatusOK
	if overall == "down" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	})
}

func (h *HealthHandler) gates(name string) bool {
	for _, n := range h.ready {
		if n == name {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
