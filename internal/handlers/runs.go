package handlers

import (
	"net/http"
	"strconv"

	"hs-exporter/internal/service"
)

const defaultRunsLimit = 20

// RunsHandler lists recorded export runs.
type RunsHandler struct {
	catalog service.CatalogService
}

// NewRunsHandler creates a new RunsHandler.
func NewRunsHandler(catalog service.CatalogService) *RunsHandler {
	return &RunsHandler{catalog: catalog}
}

// ServeHTTP writes the newest runs as JSON. The optional limit query
// parameter defaults to 20.
func (h *RunsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := defaultRunsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			handleServiceError(w, ctx, &service.ValidationError{Field: "limit", Message: "must be an integer"}, "")
			return
		}
		limit = n
	}

	runs, err := h.catalog.ListRuns(ctx, limit)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list runs")
		return
	}

	writeJSON(ctx, w, runs)
}
