package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	handler_mocks "hs-exporter/internal/handlers/mocks"
	"hs-exporter/internal/hscode"
	"hs-exporter/internal/service"
	service_mocks "hs-exporter/internal/service/mocks"
	"hs-exporter/internal/storage"
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNewRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := NewRouter(&Deps{
		Catalog:  service_mocks.NewMockCatalogService(ctrl),
		Exporter: handler_mocks.NewMockExporter(ctrl),
	})
	if router == nil {
		t.Fatal("NewRouter() returned nil")
	}
}

func TestRouter_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := service_mocks.NewMockCatalogService(ctrl)
	exporter := handler_mocks.NewMockExporter(ctrl)
	router := NewRouter(&Deps{Catalog: catalog, Exporter: exporter})

	tree := hscode.BuildTree([]hscode.FlatCodeRecord{{HS2: "01", HS4: "0101", HS6: "010121", Description: "Horses"}})

	tests := []struct {
		name       string
		method     string
		path       string
		mockSetup  func()
		wantStatus int
		wantBody   string
	}{
		{
			name:   "GET /api/health",
			method: http.MethodGet,
			path:   "/api/health",
			mockSetup: func() {
				catalog.EXPECT().LatestRun(gomock.Any()).Return(storage.RunRecord{ID: "run-1"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"healthy"`,
		},
		{
			name:   "GET /api/runs",
			method: http.MethodGet,
			path:   "/api/runs?limit=5",
			mockSetup: func() {
				catalog.EXPECT().ListRuns(gomock.Any(), 5).Return([]storage.RunRecord{{ID: "run-1"}}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"run-1"`,
		},
		{
			name:   "GET /api/codes/{hs6}",
			method: http.MethodGet,
			path:   "/api/codes/010121",
			mockSetup: func() {
				catalog.EXPECT().Lookup(gomock.Any(), "010121").
					Return(hscode.FlatCodeRecord{HS2: "01", HS4: "0101", HS6: "010121", Description: "Horses"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"hs6":"010121"`,
		},
		{
			name:   "GET /api/codes/{hs6} unknown",
			method: http.MethodGet,
			path:   "/api/codes/999999",
			mockSetup: func() {
				catalog.EXPECT().Lookup(gomock.Any(), "999999").Return(hscode.FlatCodeRecord{}, service.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "GET /api/chapters/{hs2}/tree",
			method: http.MethodGet,
			path:   "/api/chapters/01/tree",
			mockSetup: func() {
				catalog.EXPECT().ChapterTree(gomock.Any(), "01").Return(tree, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"level":"subheading"`,
		},
		{
			name:   "GET /chapters/{hs2}",
			method: http.MethodGet,
			path:   "/chapters/01",
			mockSetup: func() {
				catalog.EXPECT().ChapterTree(gomock.Any(), "01").Return(tree, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "<td>010121</td>",
		},
		{
			name:       "GET /api/export reports status",
			method:     http.MethodGet,
			path:       "/api/export",
			mockSetup:  func() {},
			wantStatus: http.StatusOK,
			wantBody:   `"running":false`,
		},
		{
			name:       "DELETE /api/export not allowed",
			method:     http.MethodDelete,
			path:       "/api/export",
			mockSetup:  func() {},
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/api/notes",
			mockSetup:  func() {},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Router %s %s status = %v, want %v", tt.method, tt.path, w.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("Router %s %s body = %s, want it to contain %s", tt.method, tt.path, w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := service_mocks.NewMockCatalogService(ctrl)
	catalog.EXPECT().LatestRun(gomock.Any()).Return(storage.RunRecord{}, service.ErrNotFound)
	router := NewRouter(&Deps{Catalog: catalog, Exporter: handler_mocks.NewMockExporter(ctrl)})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("Router should apply CORS middleware")
	}
}
