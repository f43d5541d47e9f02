package rest

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/jonboulle/clockwork"
)

// checkTimeout bounds each dependency probe.
const checkTimeout = 3 * time.Second

// CheckFunc probes one dependency. A nil error means it is usable.
type CheckFunc func(ctx context.Context) error

// HealthHandler serves the liveness, readiness and detailed health probes.
type HealthHandler struct {
	checks  map[string]CheckFunc
	version string
	clock   clockwork.Clock
}

// NewHealthHandler creates a HealthHandler running the named checks.
func NewHealthHandler(checks map[string]CheckFunc, version string, clock clockwork.Clock) *HealthHandler {
	return &HealthHandler{checks: checks, version: version, clock: clock}
}

// HealthResponse is the JSON body of every probe.
type HealthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]ComponentStatus `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

// ComponentStatus is the outcome of one dependency check.
type ComponentStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live reports that the process is serving. It never touches dependencies.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.clock.Now()})
}

// Ready answers 200 only when every check passes.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	components := h.run(r.Context())
	status, code := summarize(components)
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: h.clock.Now()})
}

// Health reports every check with its latency plus the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := h.run(r.Context())
	status, code := summarize(components)
	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  h.clock.Now(),
	})
}

func (h *HealthHandler) run(ctx context.Context) map[string]ComponentStatus {
	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	components := make(map[string]ComponentStatus, len(names))
	for _, name := range names {
		checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
		start := h.clock.Now()
		err := h.checks[name](checkCtx)
		latency := h.clock.Since(start)
		cancel()

		if err != nil {
			components[name] = ComponentStatus{Status: "down"}
			continue
		}
		components[name] = ComponentStatus{Status: "ok", Latency: latency.String()}
	}
	return components
}

func summarize(components map[string]ComponentStatus) (string, int) {
	for _, c := range components {
		if c.Status != "ok" {
			return "down", http.StatusServiceUnavailable
		}
	}
	return "ok", http.StatusOK
}
