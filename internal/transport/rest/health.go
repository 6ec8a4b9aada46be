package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
)

const pingTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	version string
	oracle  string
	clock   clockwork.Clock
}

// NewHealthHandler creates a HealthHandler. oracle names the configured question
// and grading provider and is reported by /health.
func NewHealthHandler(db dbPinger, version, oracle string, clock clockwork.Clock) *HealthHandler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &HealthHandler{db: db, version: version, oracle: oracle, clock: clock}
}

// HealthResponse is the JSON response for /health, /live and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status   string `json:"status"`
	Latency  string `json:"latency,omitempty"`
	Provider string `json:"provider,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: h.clock.Now(),
	})
}

// Ready is the readiness probe. Pings DB: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, resp := http.StatusOK, HealthResponse{Status: "ok"}
	if _, err := h.ping(r.Context()); err != nil {
		status, resp.Status = http.StatusServiceUnavailable, "down"
	}
	resp.Timestamp = h.clock.Now()
	writeJSON(w, status, resp)
}

// Health is the full health check: DB status with latency, oracle provider and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := map[string]CompStatus{
		"oracle": {Status: "configured", Provider: h.oracle},
	}

	status, overall := http.StatusOK, "ok"
	latency, err := h.ping(r.Context())
	if err != nil {
		components["database"] = CompStatus{Status: "down"}
		status, overall = http.StatusServiceUnavailable, "down"
	} else {
		components["database"] = CompStatus{Status: "ok", Latency: latency.String()}
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  h.clock.Now(),
	})
}

func (h *HealthHandler) ping(ctx context.Context) (time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	return time.Since(start), err
}
