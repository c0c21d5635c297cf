package hscode

// boundary is a last-seen code value. The zero value is unset, which differs
// from every code including the empty one.
type boundary struct {
	value string
	set   bool
}

func (b boundary) differs(code string) bool {
	return !b.set || b.value != code
}

// TreeBuilder turns an ordered stream of flat records into tree rows.
//
// Input must already be grouped by code, as the source file is. The builder
// only collapses consecutive repeats; it never sorts. Unsorted input produces
// a meaningless grouping but never fails.
type TreeBuilder struct {
	lastHS2 boundary
	lastHS4 boundary
}

// Add consumes one record and returns the rows it opens: a chapter row when
// the chapter changed, a heading row when the heading changed, and the
// subheading row itself.
func (b *TreeBuilder) Add(rec FlatCodeRecord) []TreeRow {
	rows := make([]TreeRow, 0, 3)

	if b.lastHS2.differs(rec.HS2) {
		desc := ""
		if len(rec.HS2) == 2 {
			desc = rec.Description
		}
		// An empty chapter code still opens a (blank) chapter row.
		rows = append(rows, TreeRow{Level: LevelChapter, HS2: rec.HS2, Description: desc})
		b.lastHS2 = boundary{value: rec.HS2, set: true}
		b.lastHS4 = boundary{}
	}

	if b.lastHS4.differs(rec.HS4) && len(rec.HS4) == 4 {
		rows = append(rows, TreeRow{Level: LevelHeading, HS4: rec.HS4, Description: rec.Description})
		b.lastHS4 = boundary{value: rec.HS4, set: true}
	}

	if len(rec.HS6) == 6 {
		rows = append(rows, TreeRow{Level: LevelSubheading, HS6: rec.HS6, Description: rec.Description})
	}

	return rows
}

// Reset clears the builder so it can consume a new sequence.
func (b *TreeBuilder) Reset() {
	*b = TreeBuilder{}
}

// BuildTree builds the hierarchical view of records in a single pass.
func BuildTree(records []FlatCodeRecord) []TreeRow {
	var b TreeBuilder
	tree := make([]TreeRow, 0, len(records)+len(records)/4)
	for _, rec := range records {
		tree = append(tree, b.Add(rec)...)
	}
	return tree
}
