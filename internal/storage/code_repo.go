package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_code_store.go -package=mocks hs-exporter/internal/storage CodeStore

import (
	"context"
	"database/sql"
	"fmt"

	"hs-exporter/internal/hscode"
)

// CodeStore defines the interface for storing the flat code table of a run.
type CodeStore interface {
	// InsertBatch stores records for runID in their given order, atomically.
	InsertBatch(ctx context.Context, runID string, records []hscode.FlatCodeRecord) error
	// GetByHS6 returns the first record of runID with the given subheading code.
	// Returns ErrNotFound if not found.
	GetByHS6(ctx context.Context, runID, hs6 string) (*hscode.FlatCodeRecord, error)
	// ListByChapter returns the records of runID in chapter hs2, in source order.
	ListByChapter(ctx context.Context, runID, hs2 string) ([]hscode.FlatCodeRecord, error)
}

// CodeRepo provides methods for code operations.
// It implements the CodeStore interface.
type CodeRepo struct {
	db *sql.DB
}

// NewCodeRepo creates a new CodeRepo.
func NewCodeRepo(db *sql.DB) *CodeRepo {
	return &CodeRepo{db: db}
}

// InsertBatch stores records for runID in one transaction.
// The position column keeps the source ordering.
func (r *CodeRepo) InsertBatch(ctx context.Context, runID string, records []hscode.FlatCodeRecord) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO codes (run_id, position, section, hs2, hs4, hs6, description) VALUES (?, ?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for i, rec := range records {
		if _, err = stmt.ExecContext(ctx, runID, i, rec.Section, rec.HS2, rec.HS4, rec.HS6, rec.Description); err != nil {
			return fmt.Errorf("failed to insert code at position %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit codes: %w", err)
	}
	return nil
}

// GetByHS6 returns the first record of runID with the given subheading code.
func (r *CodeRepo) GetByHS6(ctx context.Context, runID, hs6 string) (*hscode.FlatCodeRecord, error) {
	var rec hscode.FlatCodeRecord
	err := r.db.QueryRowContext(ctx,
		"SELECT section, hs2, hs4, hs6, description FROM codes WHERE run_id = ? AND hs6 = ? ORDER BY position LIMIT 1",
		runID, hs6,
	).Scan(&rec.Section, &rec.HS2, &rec.HS4, &rec.HS6, &rec.Description)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query code: %w", err)
	}

	return &rec, nil
}

// ListByChapter returns the records of runID in chapter hs2, in source order.
// Returns an empty slice if the chapter has no records (not an error).
func (r *CodeRepo) ListByChapter(ctx context.Context, runID, hs2 string) ([]hscode.FlatCodeRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT section, hs2, hs4, hs6, description FROM codes WHERE run_id = ? AND hs2 = ? ORDER BY position",
		runID, hs2,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query chapter: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	records := []hscode.FlatCodeRecord{}
	for rows.Next() {
		var rec hscode.FlatCodeRecord
		if err := rows.Scan(&rec.Section, &rec.HS2, &rec.HS4, &rec.HS6, &rec.Description); err != nil {
			return nil, fmt.Errorf("failed to scan code: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chapter: %w", err)
	}

	return records, nil
}
