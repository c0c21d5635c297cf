package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hs-exporter/internal/service"
)

// CodeHandler serves single subheading lookups.
type CodeHandler struct {
	catalog service.CatalogService
}

// NewCodeHandler creates a new CodeHandler.
func NewCodeHandler(catalog service.CatalogService) *CodeHandler {
	return &CodeHandler{catalog: catalog}
}

// ServeHTTP writes the FlatCodeRecord for {hs6} from the latest run.
func (h *CodeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	hs6 := strings.TrimSpace(chi.URLParam(r, "hs6"))
	rec, err := h.catalog.Lookup(ctx, hs6)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to look up code")
		return
	}

	writeJSON(ctx, w, rec)
}
