package storage

import "time"

// RunRecord represents one completed export run in the database.
type RunRecord struct {
	ID         string    `json:"id"` // UUID
	SourceURL  string    `json:"source_url"`
	OutputPath string    `json:"output_path"`
	FlatCount  int       `json:"flat_count"` // basic-level rows written to the flat sheet
	TreeCount  int       `json:"tree_count"` // rows written to the tree sheet
	CreatedAt  time.Time `json:"created_at"`
}
