package core

import "strings"

// keySep separates encoded cells inside a canonical key. It is a readability
// aid only: injectivity comes from the per-cell encoding itself (kind tags
// plus length-prefixed strings), which holds even when a cell contains the
// separator byte.
const keySep = "\x1f"

// DuplicateSet is a read-only view over a table: the rows whose canonical key
// occurs more than once, in original row order. Every occurrence of a repeated
// row is included, not just the second and later ones.
type DuplicateSet struct {
	Columns []string
	Rows    [][]Value
	Indices []int // positions of the rows in the source table
}

// Len returns the number of rows in the set.
func (d *DuplicateSet) Len() int {
	return len(d.Rows)
}

// Empty reports whether the set holds no rows.
func (d *DuplicateSet) Empty() bool {
	return len(d.Rows) == 0
}

// Cells renders the set's rows as display strings.
func (d *DuplicateSet) Cells() [][]string {
	out := make([][]string, len(d.Rows))
	for i, row := range d.Rows {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = v.String()
		}
		out[i] = cells
	}
	return out
}

// Result is the outcome of partitioning a table.
type Result struct {
	// Original is the input table, unchanged and unfiltered.
	Original *Table

	// Duplicates holds every row with at least one exact match elsewhere.
	Duplicates *DuplicateSet

	// Count is the number of rows in Duplicates, counting every occurrence.
	Count int
}

// HasDuplicates reports whether any duplicated rows were found.
func (r Result) HasDuplicates() bool {
	return r.Count > 0
}

// Partition computes the duplicate view of a table.
//
// A row belongs to the duplicate set iff another row (at a different index)
// has an equal value in every column. Equality follows Value.Equal: exact,
// kind-aware, no fuzzy matching. Row order within the set follows the
// original table, not grouping order.
func Partition(t *Table) Result {
	groups := make(map[string][]int, len(t.Rows))
	keys := make([]string, len(t.Rows))

	for i, row := range t.Rows {
		k := canonicalKey(row)
		keys[i] = k
		groups[k] = append(groups[k], i)
	}

	dup := &DuplicateSet{Columns: t.Columns}
	for i, row := range t.Rows {
		if len(groups[keys[i]]) >= 2 {
			dup.Rows = append(dup.Rows, row)
			dup.Indices = append(dup.Indices, i)
		}
	}

	return Result{
		Original:   t,
		Duplicates: dup,
		Count:      dup.Len(),
	}
}

// canonicalKey encodes a row as the ordered tuple of its cell values in
// schema order. Two rows are equal iff their canonical keys are equal.
func canonicalKey(row []Value) string {
	var b strings.Builder
	for i, v := range row {
		if i > 0 {
			b.WriteString(keySep)
		}
		v.appendKey(&b)
	}
	return b.String()
}
