package handlers

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_exporter.go -package=mocks hs-exporter/internal/handlers Exporter

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"hs-exporter/internal/contextutil"
	"hs-exporter/internal/pipeline"
	"hs-exporter/internal/service"
)

// Exporter runs one full export.
type Exporter interface {
	Run(ctx context.Context) (*pipeline.Result, error)
}

// ExportHandler handles HTTP requests for triggering an export.
// At most one export runs at a time.
type ExportHandler struct {
	exporter Exporter

	mu       sync.Mutex
	running  bool
	last     *ExportStatus
	inflight sync.WaitGroup
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exporter Exporter) *ExportHandler {
	return &ExportHandler{
		exporter: exporter,
	}
}

// ExportResponse represents the response from the export trigger.
type ExportResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// ExportStatus describes the export state reported by GET /api/export.
type ExportStatus struct {
	Running    bool   `json:"running"`
	FinishedAt string `json:"finished_at,omitempty"`
	RunID      string `json:"run_id,omitempty"`
	OutputFile string `json:"output_file,omitempty"`
	FlatCount  int    `json:"flat_count,omitempty"`
	TreeCount  int    `json:"tree_count,omitempty"`
	Error      string `json:"error,omitempty"`
}

// ServeHTTP starts an export in the background and returns 202, or 409 if
// one is already in progress.
func (h *ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	h.mu.Lock()
	if h.running {
		h.mu.Unlock()
		handleServiceError(w, ctx, service.ErrConflict, "Export already running")
		return
	}
	h.running = true
	h.inflight.Add(1)
	h.mu.Unlock()

	logger.InfoContext(ctx, "export triggered via API")

	// Use a detached context so the export continues after the HTTP request completes
	go func() {
		defer h.inflight.Done()
		exportCtx := contextutil.WithLogger(context.Background(), logger)

		result, err := h.exporter.Run(exportCtx)

		status := &ExportStatus{FinishedAt: time.Now().UTC().Format(time.RFC3339)}
		if err != nil {
			logger.ErrorContext(exportCtx, "export failed", "error", err)
			status.Error = err.Error()
		} else {
			logger.InfoContext(exportCtx, "export completed", "output", result.OutputFile, "run_id", result.RunID)
			status.RunID = result.RunID
			status.OutputFile = result.OutputFile
			status.FlatCount = result.FlatCount
			status.TreeCount = result.TreeCount
		}

		h.mu.Lock()
		h.running = false
		h.last = status
		h.mu.Unlock()
	}()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(ExportResponse{
		Message: "Export started. Check server logs for progress.",
		Status:  "accepted",
	})
}

// ServeStatus reports whether an export is running and the outcome of the last one.
func (h *ExportHandler) ServeStatus(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	status := ExportStatus{Running: h.running}
	if h.last != nil {
		status = *h.last
		status.Running = h.running
	}
	h.mu.Unlock()

	writeJSON(r.Context(), w, status)
}

// Wait blocks until the in-flight export, if any, has finished.
func (h *ExportHandler) Wait() {
	h.inflight.Wait()
}
