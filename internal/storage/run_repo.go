package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_run_store.go -package=mocks hs-exporter/internal/storage RunStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// RunStore defines the interface for export run storage operations.
type RunStore interface {
	// Create inserts a run. A UUID is generated when run.ID is empty.
	Create(ctx context.Context, run *RunRecord) error
	// Latest returns the most recently created run, or ErrNotFound.
	Latest(ctx context.Context) (*RunRecord, error)
	// List returns up to limit runs, newest first.
	List(ctx context.Context, limit int) ([]RunRecord, error)
}

// RunRepo provides methods for run operations.
// It implements the RunStore interface.
type RunRepo struct {
	db *sql.DB
}

// NewRunRepo creates a new RunRepo.
func NewRunRepo(db *sql.DB) *RunRepo {
	return &RunRepo{db: db}
}

// Create inserts a run and fills in its ID and CreatedAt.
func (r *RunRepo) Create(ctx context.Context, run *RunRecord) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO runs (id, source_url, output_path, flat_count, tree_count) VALUES (?, ?, ?, ?, ?)",
		run.ID, run.SourceURL, run.OutputPath, run.FlatCount, run.TreeCount,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	err = r.db.QueryRowContext(ctx, "SELECT created_at FROM runs WHERE id = ?", run.ID).Scan(&run.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to read run timestamp: %w", err)
	}

	return nil
}

// Latest returns the most recently created run.
// Runs created within the same second are ordered by insertion.
func (r *RunRepo) Latest(ctx context.Context) (*RunRecord, error) {
	var run RunRecord
	err := r.db.QueryRowContext(ctx,
		"SELECT id, source_url, output_path, flat_count, tree_count, created_at FROM runs ORDER BY created_at DESC, rowid DESC LIMIT 1",
	).Scan(&run.ID, &run.SourceURL, &run.OutputPath, &run.FlatCount, &run.TreeCount, &run.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest run: %w", err)
	}

	return &run, nil
}

// List returns up to limit runs, newest first.
// Returns an empty slice if no runs exist (not an error).
func (r *RunRepo) List(ctx context.Context, limit int) ([]RunRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, source_url, output_path, flat_count, tree_count, created_at FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	runs := []RunRecord{}
	for rows.Next() {
		var run RunRecord
		if err := rows.Scan(&run.ID, &run.SourceURL, &run.OutputPath, &run.FlatCount, &run.TreeCount, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}

	return runs, nil
}
