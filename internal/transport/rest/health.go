package rest

import (
	"context"
	"net/http"
	"time"
)

// dbPinger is satisfied by *pgxpool.Pool.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the probes and the WOSA service status.
type HealthHandler struct {
	db      dbPinger
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version, now: time.Now}
}

const (
	pingTimeout = 3 * time.Second

	statusOK   = "ok"
	statusDown = "down"
)

// HealthResponse is the body of every health endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Service    string                `json:"service,omitempty"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

func (h *HealthHandler) respond(w http.ResponseWriter, resp HealthResponse) {
	resp.Timestamp = h.now().UTC()
	code := http.StatusOK
	if resp.Status == statusDown {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}

// pingDB reports database reachability and round-trip time.
func (h *HealthHandler) pingDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := h.now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: statusDown}
	}
	return CompStatus{Status: statusOK, Latency: h.now().Sub(start).String()}
}

// Live handles GET /live. It never touches dependencies.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	h.respond(w, HealthResponse{Status: statusOK})
}

// Ready handles GET /ready: 503 while the database is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	h.respond(w, HealthResponse{Status: h.pingDB(r.Context()).Status})
}

// Health handles GET /health with per-component detail and build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())
	h.respond(w, HealthResponse{
		Status:     db.Status,
		Version:    h.version,
		Components: map[string]CompStatus{"database": db},
	})
}

// Service handles GET /wosa/health, the API-level status independent of
// the database.
func (h *HealthHandler) Service(w http.ResponseWriter, r *http.Request) {
	h.respond(w, HealthResponse{
		Status:  "healthy",
		Service: "WOSA Reports API",
		Version: h.version,
	})
}
