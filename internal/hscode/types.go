package hscode

// Level identifies which code column a TreeRow populates.
type Level string

const (
	LevelChapter    Level = "chapter"
	LevelHeading    Level = "heading"
	LevelSubheading Level = "subheading"
)

// FlatCodeRecord is one basic-level row of the source classification table.
type FlatCodeRecord struct {
	Section     string `json:"section"` // always empty, no section lookup is done
	HS2         string `json:"hs2"`
	HS4         string `json:"hs4"`
	HS6         string `json:"hs6"`
	Description string `json:"description"`
}

// TreeRow is one row of the hierarchical view.
// At most one of HS2, HS4 and HS6 is non-empty; Level names the populated column.
type TreeRow struct {
	Level       Level  `json:"level"`
	HS2         string `json:"hs2,omitempty"`
	HS4         string `json:"hs4,omitempty"`
	HS6         string `json:"hs6,omitempty"`
	Description string `json:"description"`
}

// Code returns the populated code column of the row.
func (r TreeRow) Code() string {
	switch r.Level {
	case LevelHeading:
		return r.HS4
	case LevelSubheading:
		return r.HS6
	default:
		return r.HS2
	}
}
