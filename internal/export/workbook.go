package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"hs-exporter/internal/hscode"
)

// Sheet names and headers of the exported workbook.
const (
	TreeSheet = "HS Tree"
	FlatSheet = "Flat Table"
)

var (
	TreeHeader = []string{"HS2", "HS4", "HS6", "Description"}
	FlatHeader = []string{"Section", "HS6", "Description"}
)

// Writer serializes the tree and flat views into an xlsx workbook.
type Writer struct{}

// NewWriter creates a Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write creates the workbook at path with the "HS Tree" and "Flat Table"
// sheets. Every cell is a string so codes keep their leading zeros.
//
// The workbook is written to a temporary file next to path and renamed into
// place, so on failure path is either absent or left as it was.
// Failures are returned as *hscode.WriteError.
func (w *Writer) Write(tree []hscode.TreeRow, flat []hscode.FlatCodeRecord, path string) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", TreeSheet); err != nil {
		return &hscode.WriteError{Path: path, Err: err}
	}
	if _, err := f.NewSheet(FlatSheet); err != nil {
		return &hscode.WriteError{Path: path, Err: err}
	}

	treeRows := make([][]string, len(tree))
	for i, row := range tree {
		treeRows[i] = []string{row.HS2, row.HS4, row.HS6, row.Description}
	}
	if err := writeSheet(f, TreeSheet, TreeHeader, treeRows); err != nil {
		return &hscode.WriteError{Path: path, Err: err}
	}

	flatRows := make([][]string, len(flat))
	for i, rec := range flat {
		flatRows[i] = []string{rec.Section, rec.HS6, rec.Description}
	}
	if err := writeSheet(f, FlatSheet, FlatHeader, flatRows); err != nil {
		return &hscode.WriteError{Path: path, Err: err}
	}
	f.SetActiveSheet(0)

	if err := saveAtomic(f, path); err != nil {
		return &hscode.WriteError{Path: path, Err: err}
	}
	return nil
}

// writeSheet streams header and rows into sheet starting at A1.
func writeSheet(f *excelize.File, sheet string, header []string, rows [][]string) error {
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("failed to open sheet %q: %w", sheet, err)
	}

	if err := sw.SetRow("A1", toCells(header)); err != nil {
		return fmt.Errorf("failed to write %q header: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, toCells(row)); err != nil {
			return fmt.Errorf("failed to write %q row %d: %w", sheet, i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet %q: %w", sheet, err)
	}
	return nil
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

// saveAtomic writes f to a temp file in path's directory and renames it over path.
func saveAtomic(f *excelize.File, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".hs-export-*.xlsx")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := f.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move workbook into place: %w", err)
	}

	committed = true
	return nil
}
