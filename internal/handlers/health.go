package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"hs-exporter/internal/contextutil"
	"hs-exporter/internal/service"
)

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	catalog            service.CatalogService
	healthCheckTimeout time.Duration
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(catalog service.CatalogService) *HealthHandler {
	return &HealthHandler{
		catalog:            catalog,
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

	// ID of the most recent export run, if any
	LatestRunID string `json:"latest_run_id,omitempty"`

	// List of issues (only present if status is unhealthy)
	Issues []string `json:"issues,omitempty"`
}

// ServeHTTP handles HTTP requests for health checks.
// Returns 200 OK when the catalog answers, 503 Service Unavailable otherwise.
// An empty catalog is healthy.
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

	checks := make(map[string]string)
	var issues []string

	response := HealthResponse{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	run, err := h.catalog.LatestRun(checkCtx)
	switch {
	case err == nil:
		checks["catalog"] = "ok"
		response.LatestRunID = run.ID
	case errors.Is(err, service.ErrNotFound):
		checks["catalog"] = "empty"
	default:
		logger.WarnContext(ctx, "catalog health check failed", "error", err)
		checks["catalog"] = "error"
		issues = append(issues, "catalog_unavailable")
	}

	response.Status = "healthy"
	httpStatus := http.StatusOK
	if len(issues) > 0 {
		response.Status = "unhealthy"
		response.Issues = issues
		httpStatus = http.StatusServiceUnavailable
	}
	response.Checks = checks

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.ErrorContext(ctx, "failed to encode health response", "error", err)
	}
}
