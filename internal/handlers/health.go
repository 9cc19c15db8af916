package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"personal-kanban/internal/contextutil"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	store              Pinger
	backend            string
	healthCheckTimeout time.Duration
}

// NewHealthHandler creates a new HealthHandler checking store, labelled by backend.
func NewHealthHandler(store Pinger, backend string) *HealthHandler {
	return &HealthHandler{
		store:              store,
		backend:            backend,
		healthCheckTimeout: 5 * time.Second,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	// Overall health status: "healthy" or "unhealthy"
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Individual check results
	Checks map[string]string `json:"checks"`

	// List of issues (only present if status is unhealthy)
	Issues []string `json:"issues,omitempty"`
}

// ServeHTTP reports 200 when the store answers and 503 otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	checkCtx, cancel := context.WithTimeout(ctx, h.healthCheckTimeout)
	defer cancel()

	checks := map[string]string{"backend": h.backend}
	var issues []string

	if h.checkStore(checkCtx, logger) {
		checks["storage"] = "ok"
	} else {
		checks["storage"] = "error"
		issues = append(issues, "storage_unavailable")
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if len(issues) > 0 {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(ctx, w, httpStatus, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Issues:    issues,
	})
}

// checkStore checks if the store is reachable.
func (h *HealthHandler) checkStore(ctx context.Context, logger *slog.Logger) bool {
	if err := h.store.Ping(ctx); err != nil {
		logger.WarnContext(ctx, "storage health check failed", "backend", h.backend, "error", err)
		return false
	}
	return true
}
