package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"hs-exporter/internal/handlers"
	"hs-exporter/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Catalog  service.CatalogService
	Exporter handlers.Exporter
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(CORS)
	r.Use(LoggerMiddleware)

	healthHandler := handlers.NewHealthHandler(deps.Catalog)
	codeHandler := handlers.NewCodeHandler(deps.Catalog)
	runsHandler := handlers.NewRunsHandler(deps.Catalog)
	chapterHandler := handlers.NewChapterHandler(deps.Catalog)
	exportHandler := handlers.NewExportHandler(deps.Exporter)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)
		r.Method(http.MethodGet, "/runs", runsHandler)
		r.Method(http.MethodGet, "/codes/{hs6}", codeHandler)
		r.Get("/chapters/{hs2}/tree", chapterHandler.ServeTree)
		r.Method(http.MethodPost, "/export", exportHandler)
		r.Get("/export", exportHandler.ServeStatus)
	})

	r.Get("/chapters/{hs2}", chapterHandler.ServePage)

	return r
}
