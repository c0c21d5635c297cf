package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_catalog_service.go -package=mocks -mock_names=CatalogService=MockCatalogService hs-exporter/internal/service CatalogService

import (
	"context"
	"errors"
	"fmt"

	"hs-exporter/internal/contextutil"
	"hs-exporter/internal/hscode"
	"hs-exporter/internal/storage"
)

// CatalogService records export runs and answers code lookups against the
// most recent one.
type CatalogService interface {
	// RecordRun stores a completed export and its flat table. Returns the run ID.
	RecordRun(ctx context.Context, sourceURL, outputPath string, flat []hscode.FlatCodeRecord, treeCount int) (string, error)
	// LatestRun returns the most recent run, or ErrNotFound when none exists.
	LatestRun(ctx context.Context) (storage.RunRecord, error)
	// ListRuns returns up to limit runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]storage.RunRecord, error)
	// Lookup returns the record for a 6-digit subheading code.
	Lookup(ctx context.Context, hs6 string) (hscode.FlatCodeRecord, error)
	// ChapterTree returns the tree view of one 2-digit chapter.
	ChapterTree(ctx context.Context, hs2 string) ([]hscode.TreeRow, error)
}

// catalogService implements CatalogService.
type catalogService struct {
	runs  storage.RunStore
	codes storage.CodeStore
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(runs storage.RunStore, codes storage.CodeStore) CatalogService {
	return &catalogService{
		runs:  runs,
		codes: codes,
	}
}

// RecordRun stores the run row first and then its codes.
func (s *catalogService) RecordRun(ctx context.Context, sourceURL, outputPath string, flat []hscode.FlatCodeRecord, treeCount int) (string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	run := &storage.RunRecord{
		SourceURL:  sourceURL,
		OutputPath: outputPath,
		FlatCount:  len(flat),
		TreeCount:  treeCount,
	}
	if err := s.runs.Create(ctx, run); err != nil {
		logger.ErrorContext(ctx, "failed to create run", "error", err)
		return "", WrapError(err, "failed to create run")
	}

	if err := s.codes.InsertBatch(ctx, run.ID, flat); err != nil {
		logger.ErrorContext(ctx, "failed to store codes", "run_id", run.ID, "error", err)
		return "", WrapError(err, "failed to store codes")
	}

	logger.InfoContext(ctx, "run recorded", "run_id", run.ID, "flat_count", run.FlatCount, "tree_count", treeCount)
	return run.ID, nil
}

// LatestRun returns the most recent run.
func (s *catalogService) LatestRun(ctx context.Context) (storage.RunRecord, error) {
	run, err := s.runs.Latest(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return storage.RunRecord{}, ErrNotFound
	}
	if err != nil {
		return storage.RunRecord{}, WrapError(err, "failed to load latest run")
	}
	return *run, nil
}

// MaxListRuns bounds the limit accepted by ListRuns.
const MaxListRuns = 100

// ListRuns returns up to limit runs, newest first.
func (s *catalogService) ListRuns(ctx context.Context, limit int) ([]storage.RunRecord, error) {
	if limit < 1 || limit > MaxListRuns {
		return nil, &ValidationError{
			Field:   "limit",
			Message: fmt.Sprintf("must be between 1 and %d", MaxListRuns),
		}
	}

	runs, err := s.runs.List(ctx, limit)
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to list runs", "error", err)
		return nil, WrapError(err, "failed to list runs")
	}
	return runs, nil
}

// Lookup returns the record for hs6 from the latest run.
func (s *catalogService) Lookup(ctx context.Context, hs6 string) (hscode.FlatCodeRecord, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if len(hs6) != 6 {
		logger.WarnContext(ctx, "invalid subheading code", "hs6", hs6)
		return hscode.FlatCodeRecord{}, &ValidationError{
			Field:   "hs6",
			Message: "must be 6 characters",
		}
	}

	run, err := s.LatestRun(ctx)
	if err != nil {
		return hscode.FlatCodeRecord{}, err
	}

	rec, err := s.codes.GetByHS6(ctx, run.ID, hs6)
	if errors.Is(err, storage.ErrNotFound) {
		return hscode.FlatCodeRecord{}, ErrNotFound
	}
	if err != nil {
		logger.ErrorContext(ctx, "failed to look up code", "hs6", hs6, "error", err)
		return hscode.FlatCodeRecord{}, WrapError(err, "failed to look up code")
	}

	return *rec, nil
}

// ChapterTree rebuilds the tree of chapter hs2 from the latest run's rows.
func (s *catalogService) ChapterTree(ctx context.Context, hs2 string) ([]hscode.TreeRow, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if len(hs2) != 2 {
		logger.WarnContext(ctx, "invalid chapter code", "hs2", hs2)
		return nil, &ValidationError{
			Field:   "hs2",
			Message: "must be 2 characters",
		}
	}

	run, err := s.LatestRun(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.codes.ListByChapter(ctx, run.ID, hs2)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list chapter", "hs2", hs2, "error", err)
		return nil, WrapError(err, "failed to list chapter")
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}

	return hscode.BuildTree(records), nil
}
