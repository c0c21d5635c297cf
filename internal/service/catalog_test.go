package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"

	"hs-exporter/internal/hscode"
	"hs-exporter/internal/service"
	"hs-exporter/internal/storage"
	storage_mocks "hs-exporter/internal/storage/mocks"
)

func init() {
	// Set default logger to discard output for cleaner test output
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

var chapterOne = []hscode.FlatCodeRecord{
	{HS2: "01", HS4: "0101", HS6: "010121", Description: "Horses"},
	{HS2: "01", HS4: "0101", HS6: "010129", Description: "Other horses"},
}

func TestNewCatalogService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewCatalogService(storage_mocks.NewMockRunStore(ctrl), storage_mocks.NewMockCodeStore(ctrl))
	if svc == nil {
		t.Fatal("NewCatalogService() returned nil")
	}
}

func TestCatalogService_RecordRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runs := storage_mocks.NewMockRunStore(ctrl)
	codes := storage_mocks.NewMockCodeStore(ctrl)
	svc := service.NewCatalogService(runs, codes)
	ctx := context.Background()

	tests := []struct {
		name      string
		mockSetup func()
		wantID    string
		wantErr   bool
	}{
		{
			name: "stores run then codes",
			mockSetup: func() {
				gomock.InOrder(
					runs.EXPECT().
						Create(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, run *storage.RunRecord) error {
							if run.FlatCount != 2 || run.TreeCount != 4 || run.SourceURL != "src" || run.OutputPath != "out.xlsx" {
								t.Errorf("Create() got run %+v", run)
							}
							run.ID = "run-1"
							return nil
						}),
					codes.EXPECT().InsertBatch(gomock.Any(), "run-1", chapterOne).Return(nil),
				)
			},
			wantID: "run-1",
		},
		{
			name: "run insert fails",
			mockSetup: func() {
				runs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
			},
			wantErr: true,
		},
		{
			name: "code insert fails",
			mockSetup: func() {
				runs.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, run *storage.RunRecord) error {
						run.ID = "run-2"
						return nil
					})
				codes.EXPECT().InsertBatch(gomock.Any(), "run-2", chapterOne).Return(errors.New("constraint"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			id, err := svc.RecordRun(ctx, "src", "out.xlsx", chapterOne, 4)
			if tt.wantErr {
				if err == nil {
					t.Error("RecordRun() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("RecordRun() unexpected error: %v", err)
			}
			if id != tt.wantID {
				t.Errorf("RecordRun() id = %q, want %q", id, tt.wantID)
			}
		})
	}
}

func TestCatalogService_Lookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runs := storage_mocks.NewMockRunStore(ctrl)
	codes := storage_mocks.NewMockCodeStore(ctrl)
	svc := service.NewCatalogService(runs, codes)
	ctx := context.Background()
	latest := &storage.RunRecord{ID: "run-9"}

	tests := []struct {
		name         string
		hs6          string
		mockSetup    func()
		want         hscode.FlatCodeRecord
		checkErrType func(error) bool
	}{
		{
			name: "found",
			hs6:  "010121",
			mockSetup: func() {
				runs.EXPECT().Latest(gomock.Any()).Return(latest, nil)
				codes.EXPECT().GetByHS6(gomock.Any(), "run-9", "010121").Return(&chapterOne[0], nil)
			},
			want: chapterOne[0],
		},
		{
			name:      "wrong length",
			hs6:       "0101",
			mockSetup: func() {},
			checkErrType: func(err error) bool {
				var validationErr *service.ValidationError
				return errors.As(err, &validationErr) && validationErr.Field == "hs6"
			},
		},
		{
			name: "no runs yet",
			hs6:  "010121",
			mockSetup: func() {
				runs.EXPECT().Latest(gomock.Any()).Return(nil, storage.ErrNotFound)
			},
			checkErrType: func(err error) bool {
				return errors.Is(err, service.ErrNotFound)
			},
		},
		{
			name: "unknown code",
			hs6:  "999999",
			mockSetup: func() {
				runs.EXPECT().Latest(gomock.Any()).Return(latest, nil)
				codes.EXPECT().GetByHS6(gomock.Any(), "run-9", "999999").Return(nil, storage.ErrNotFound)
			},
			checkErrType: func(err error) bool {
				return errors.Is(err, service.ErrNotFound)
			},
		},
		{
			name: "store failure",
			hs6:  "010121",
			mockSetup: func() {
				runs.EXPECT().Latest(gomock.Any()).Return(latest, nil)
				codes.EXPECT().GetByHS6(gomock.Any(), "run-9", "010121").Return(nil, errors.New("locked"))
			},
			checkErrType: func(err error) bool {
				return err != nil && !errors.Is(err, service.ErrNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			got, err := svc.Lookup(ctx, tt.hs6)
			if tt.checkErrType != nil {
				if !tt.checkErrType(err) {
					t.Errorf("Lookup() error = %v, unexpected type", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Lookup() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCatalogService_ChapterTree(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runs := storage_mocks.NewMockRunStore(ctrl)
	codes := storage_mocks.NewMockCodeStore(ctrl)
	svc := service.NewCatalogService(runs, codes)
	ctx := context.Background()
	latest := &storage.RunRecord{ID: "run-9"}

	t.Run("builds tree from chapter rows", func(t *testing.T) {
		runs.EXPECT().Latest(gomock.Any()).Return(latest, nil)
		codes.EXPECT().ListByChapter(gomock.Any(), "run-9", "01").Return(chapterOne, nil)

		got, err := svc.ChapterTree(ctx, "01")
		if err != nil {
			t.Fatalf("ChapterTree() error = %v", err)
		}
		want := []hscode.TreeRow{
			{Level: hscode.LevelChapter, HS2: "01", Description: "Horses"},
			{Level: hscode.LevelHeading, HS4: "0101", Description: "Horses"},
			{Level: hscode.LevelSubheading, HS6: "010121", Description: "Horses"},
			{Level: hscode.LevelSubheading, HS6: "010129", Description: "Other horses"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ChapterTree() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty chapter is not found", func(t *testing.T) {
		runs.EXPECT().Latest(gomock.Any()).Return(latest, nil)
		codes.EXPECT().ListByChapter(gomock.Any(), "run-9", "77").Return([]hscode.FlatCodeRecord{}, nil)

		if _, err := svc.ChapterTree(ctx, "77"); !errors.Is(err, service.ErrNotFound) {
			t.Errorf("ChapterTree() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("invalid chapter code", func(t *testing.T) {
		var validationErr *service.ValidationError
		if _, err := svc.ChapterTree(ctx, "1"); !errors.As(err, &validationErr) {
			t.Errorf("ChapterTree() error = %v, want *ValidationError", err)
		}
	})

	t.Run("latest run failure", func(t *testing.T) {
		runs.EXPECT().Latest(gomock.Any()).Return(nil, errors.New("io error"))

		_, err := svc.ChapterTree(ctx, "01")
		if err == nil || errors.Is(err, service.ErrNotFound) {
			t.Errorf("ChapterTree() error = %v, want wrapped store error", err)
		}
	})
}

func TestCatalogService_ListRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runs := storage_mocks.NewMockRunStore(ctrl)
	svc := service.NewCatalogService(runs, storage_mocks.NewMockCodeStore(ctrl))
	ctx := context.Background()

	tests := []struct {
		name      string
		limit     int
		mockSetup func()
		wantLen   int
		wantField string
		wantErr   bool
	}{
		{
			name:  "returns runs",
			limit: 2,
			mockSetup: func() {
				runs.EXPECT().List(gomock.Any(), 2).Return([]storage.RunRecord{{ID: "b"}, {ID: "a"}}, nil)
			},
			wantLen: 2,
		},
		{
			name:      "zero limit",
			limit:     0,
			mockSetup: func() {},
			wantField: "limit",
		},
		{
			name:      "limit above maximum",
			limit:     service.MaxListRuns + 1,
			mockSetup: func() {},
			wantField: "limit",
		},
		{
			name:  "store failure",
			limit: 5,
			mockSetup: func() {
				runs.EXPECT().List(gomock.Any(), 5).Return(nil, errors.New("locked"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			got, err := svc.ListRuns(ctx, tt.limit)
			if tt.wantField != "" {
				var validationErr *service.ValidationError
				if !errors.As(err, &validationErr) || validationErr.Field != tt.wantField {
					t.Errorf("ListRuns() error = %v, want validation error on %s", err, tt.wantField)
				}
				return
			}
			if tt.wantErr {
				if err == nil {
					t.Error("ListRuns() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ListRuns() unexpected error: %v", err)
			}
			if len(got) != tt.wantLen {
				t.Errorf("ListRuns() returned %d runs, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestCatalogService_WithSQLite(t *testing.T) {
	db, err := storage.New(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	defer func() {
		_ = db.Close()
	}()
	if err := storage.Migrate(db); err != nil {
		t.Fatalf("storage.Migrate() error = %v", err)
	}

	svc := service.NewCatalogService(storage.NewRunRepo(db), storage.NewCodeRepo(db))
	ctx := context.Background()

	if _, err := svc.LatestRun(ctx); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("LatestRun() on empty catalog error = %v, want ErrNotFound", err)
	}

	old := []hscode.FlatCodeRecord{{HS2: "01", HS4: "0101", HS6: "010121", Description: "Old horses"}}
	if _, err := svc.RecordRun(ctx, "src", "old.xlsx", old, 3); err != nil {
		t.Fatalf("RecordRun(old) error = %v", err)
	}
	runID, err := svc.RecordRun(ctx, "src", "new.xlsx", chapterOne, 4)
	if err != nil {
		t.Fatalf("RecordRun(new) error = %v", err)
	}

	latest, err := svc.LatestRun(ctx)
	if err != nil {
		t.Fatalf("LatestRun() error = %v", err)
	}
	if latest.ID != runID || latest.FlatCount != 2 || latest.TreeCount != 4 {
		t.Errorf("LatestRun() = %+v, want run %s with 2 flat and 4 tree rows", latest, runID)
	}

	got, err := svc.Lookup(ctx, "010121")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if got.Description != "Horses" {
		t.Errorf("Lookup() description = %q, want the latest run's %q", got.Description, "Horses")
	}

	all, err := svc.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(all) != 2 || all[0].ID != runID {
		t.Errorf("ListRuns() = %+v, want 2 runs newest first", all)
	}

	tree, err := svc.ChapterTree(ctx, "01")
	if err != nil {
		t.Fatalf("ChapterTree() error = %v", err)
	}
	if len(tree) != 4 {
		t.Errorf("ChapterTree() = %d rows, want 4", len(tree))
	}
}
