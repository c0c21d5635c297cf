package hscode

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Source column names. Header cells are matched after trimming whitespace.
const (
	ColumnClassification = "Classification"
	ColumnIsBasicLevel   = "IsBasicLevel"
	ColumnCode           = "Code"
	ColumnDescription    = "Description"
)

// Filter values selecting canonical 6-digit basic-level codes.
const (
	ClassificationHS6 = "H6"
	BasicLevelFlag    = "1"
)

var requiredColumns = []string{
	ColumnClassification,
	ColumnIsBasicLevel,
	ColumnCode,
	ColumnDescription,
}

// ParseWorkbook reads the first worksheet of an xlsx workbook and extracts
// the basic-level HS6 records from it. Row 1 is the header row.
func ParseWorkbook(r io.Reader) ([]FlatCodeRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &SchemaError{Missing: append([]string(nil), requiredColumns...)}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	return ExtractRecords(rows)
}

// ExtractRecords filters a header-first table down to basic-level HS6 rows
// and derives the chapter, heading and subheading prefixes of each code.
// Rows may be ragged; missing cells read as empty strings.
func ExtractRecords(rows [][]string) ([]FlatCodeRecord, error) {
	var header []string
	if len(rows) > 0 {
		header = rows[0]
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	cell := func(row []string, col string) string {
		if i := index[col]; i < len(row) {
			return row[i]
		}
		return ""
	}

	records := make([]FlatCodeRecord, 0, len(rows))
	for _, row := range rows[1:] {
		if cell(row, ColumnClassification) != ClassificationHS6 || cell(row, ColumnIsBasicLevel) != BasicLevelFlag {
			continue
		}
		code := cell(row, ColumnCode)
		records = append(records, FlatCodeRecord{
			Section:     "",
			HS2:         prefix(code, 2),
			HS4:         prefix(code, 4),
			HS6:         prefix(code, 6),
			Description: cell(row, ColumnDescription),
		})
	}

	return records, nil
}

// prefix returns the first n bytes of code, or "" when code is shorter.
func prefix(code string, n int) string {
	if len(code) < n {
		return ""
	}
	return code[:n]
}
