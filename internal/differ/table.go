// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"io"
	"sort"
	"strings"

	"github.com/fitskit/fitsdiff/internal/fits"
)

// ColumnAttrDiff records one differing attribute between two columns that
// share a name. What is the attribute's report label (formats, units, ...).
type ColumnAttrDiff struct {
	Column string
	What   string
	A, B   any
}

// CellDiff is one sampled differing table cell, addressed by column name and
// 0-based row index.
type CellDiff struct {
	Column string
	Row    int
	A, B   any
}

// TableDiff is the result of comparing two record tables.
//
// Difference fields:
//   - ColumnCounts: the two column counts, set when they differ. A count
//     mismatch does not stop comparison of the columns common to both.
//   - ExtraColumns: columns present in exactly one table, in that table's
//     original column order with full descriptors; [0] only in a, [1] only
//     in b.
//   - AttrDiffs: attribute differences among name-identical columns.
//   - Values: up to the configured cap of differing cells, capped globally
//     across all columns.
//   - Total / Ratio: the exact count of differing row-column combinations
//     (distinct rows per column) and its ratio to rows(a) x columns(a).
//
// CommonColumns lists the lower-cased sorted names present in both tables
// after ignore filtering; it fixes the value comparison order and is not a
// difference field.
type TableDiff struct {
	ColumnCounts  *CountPair
	ExtraColumns  [2][]fits.Column
	AttrDiffs     []ColumnAttrDiff
	CommonColumns []string
	Values        []CellDiff
	Total         int
	Ratio         float64

	numDiffs int
}

// NewTableDiff compares two tables under the given configuration.
func NewTableDiff(a, b *fits.Table, opts Options) *TableDiff {
	return newTableDiff(a, b, opts.normalize())
}

func newTableDiff(a, b *fits.Table, opts *options) *TableDiff {
	d := &TableDiff{numDiffs: opts.numDiffs}

	colsA, colsB := a.Columns(), b.Columns()
	if len(colsA) != len(colsB) {
		d.ColumnCounts = &CountPair{A: len(colsA), B: len(colsB)}
	}

	if opts.allFieldsIgnored() {
		return d
	}

	namesA := columnNames(colsA, opts)
	namesB := columnNames(colsB, opts)

	for name := range namesA {
		if _, ok := namesB[name]; ok {
			d.CommonColumns = append(d.CommonColumns, name)
		}
	}
	sort.Strings(d.CommonColumns)

	// Unique columns are reported in each table's original order, with the
	// descriptor kept for attribute reporting.
	for _, col := range colsA {
		name := strings.ToLower(col.Name)
		if _, mine := namesA[name]; !mine {
			continue
		}
		if _, ok := namesB[name]; !ok {
			d.ExtraColumns[0] = append(d.ExtraColumns[0], col)
		}
	}
	for _, col := range colsB {
		name := strings.ToLower(col.Name)
		if _, mine := namesB[name]; !mine {
			continue
		}
		if _, ok := namesA[name]; !ok {
			d.ExtraColumns[1] = append(d.ExtraColumns[1], col)
		}
	}

	for _, name := range d.CommonColumns {
		colA, _ := a.Column(name)
		colB, _ := b.Column(name)
		d.AttrDiffs = append(d.AttrDiffs, diffColumnAttrs(colA, colB)...)
	}

	d.compareValues(a, b, opts)

	if rows, cols := a.Rows(), len(colsA); rows > 0 && cols > 0 {
		d.Ratio = float64(d.Total) / float64(rows*cols)
	}
	return d
}

// columnNames returns the lower-cased name set of the descriptors, minus
// ignored columns.
func columnNames(cols []fits.Column, opts *options) map[string]struct{} {
	names := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		if opts.ignoredField(c.Name) {
			continue
		}
		names[strings.ToLower(c.Name)] = struct{}{}
	}
	return names
}

// columnAttrs pairs each compared column attribute with its report label.
var columnAttrs = []struct {
	what string
	get  func(fits.Column) any
}{
	{"formats", func(c fits.Column) any { return c.Format }},
	{"units", func(c fits.Column) any { return c.Unit }},
	{"null values", func(c fits.Column) any { return c.Null }},
	{"bscales", func(c fits.Column) any { return c.Scale }},
	{"bzeros", func(c fits.Column) any { return c.Zero }},
	{"display formats", func(c fits.Column) any { return c.Disp }},
	{"dimensions", func(c fits.Column) any { return c.Dim }},
}

// diffColumnAttrs compares every descriptor attribute of two name-identical
// columns exactly.
func diffColumnAttrs(a, b fits.Column) []ColumnAttrDiff {
	var diffs []ColumnAttrDiff
	for _, attr := range columnAttrs {
		va, vb := attr.get(a), attr.get(b)
		if va == vb {
			continue
		}
		diffs = append(diffs, ColumnAttrDiff{Column: a.Name, What: attr.what, A: va, B: vb})
	}
	return diffs
}

// compareValues walks the common columns, counting every differing row while
// sampling cells only until the global cap is exhausted. Multi-valued cells
// contribute at most one difference per row.
func (d *TableDiff) compareValues(a, b *fits.Table, opts *options) {
	for _, name := range d.CommonColumns {
		colA, _ := a.Column(name)
		cellsA := a.Data(name)
		cellsB := b.Data(name)
		n := min(len(cellsA), len(cellsB))

		// Float and variable-length columns honor the relative tolerance;
		// everything else compares strictly.
		tolerance := 0.0
		if strings.Contains(colA.Format, "P") ||
			(columnFloating(cellsA) && columnFloating(cellsB)) {
			tolerance = opts.tolerance
		}
		differs := func(i int) bool {
			return cellDiffers(cellsA[i], cellsB[i], tolerance, opts.ignoreBlanks)
		}

		keep := -1
		if opts.numDiffs >= 0 {
			keep = max(opts.numDiffs-len(d.Values), 0)
		}

		idxs, total := whereNotClose(n, differs, keep)
		d.Total += total
		for _, i := range idxs {
			d.Values = append(d.Values, CellDiff{Column: colA.Name, Row: i, A: cellsA[i], B: cellsB[i]})
		}
	}
}

// columnFloating reports whether a column's cells hold floating-point
// values, judged from the first non-nil cell.
func columnFloating(cells []any) bool {
	for _, c := range cells {
		switch c.(type) {
		case float64, []float64:
			return true
		case nil:
			continue
		default:
			return false
		}
	}
	return false
}

// cellDiffers compares one pair of cells. Numeric cells (scalar or
// multi-valued) compare element-wise with the relative tolerance; slices of
// different lengths always differ; everything else falls back to the scalar
// comparator with exact equality.
func cellDiffers(a, b any, tolerance float64, ignoreBlanks bool) bool {
	fa, aok := cellFloats(a)
	fb, bok := cellFloats(b)
	if aok && bok {
		if len(fa) != len(fb) {
			return true
		}
		for i := range fa {
			if notCloseFloat(fa[i], fb[i], tolerance) {
				return true
			}
		}
		return false
	}
	return diffValues(rstripValue(a, ignoreBlanks), rstripValue(b, ignoreBlanks), 0)
}

// cellFloats flattens a numeric cell into float64s. Non-numeric cells
// report false.
func cellFloats(v any) ([]float64, bool) {
	switch v := v.(type) {
	case float64:
		return []float64{v}, true
	case int64:
		return []float64{float64(v)}, true
	case []float64:
		return v, true
	case []int64:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, true
	default:
		return nil, false
	}
}

// Identical reports whether no differences were recorded.
func (d *TableDiff) Identical() bool {
	return d.ColumnCounts == nil &&
		len(d.ExtraColumns[0]) == 0 &&
		len(d.ExtraColumns[1]) == 0 &&
		len(d.AttrDiffs) == 0 &&
		d.Total == 0
}

// Report writes the table differences as indented text.
func (d *TableDiff) Report(w io.Writer) {
	if d.ColumnCounts != nil {
		writef(w, "  Tables have different number of columns:\n")
		writef(w, "   a: %d\n", d.ColumnCounts.A)
		writef(w, "   b: %d\n", d.ColumnCounts.B)
	}

	for _, col := range d.ExtraColumns[0] {
		writef(w, "  Extra column %s of format %s in a\n", col.Name, col.Format)
	}
	for _, col := range d.ExtraColumns[1] {
		writef(w, "  Extra column %s of format %s in b\n", col.Name, col.Format)
	}

	for _, attr := range d.AttrDiffs {
		writef(w, "  Column %s has different %s:\n", attr.Column, attr.What)
		reportDiffValues(w, attr.A, attr.B)
	}

	if len(d.Values) == 0 {
		return
	}

	for _, cell := range d.Values {
		writef(w, "  Column %s data differs in row %d:\n", cell.Column, cell.Row)
		reportDiffValues(w, cell.A, cell.B)
	}

	if d.numDiffs >= 0 && d.numDiffs < d.Total {
		writef(w, "  ...%d additional difference(s) found.\n", d.Total-d.numDiffs)
	}

	writef(w, "  ...\n")
	writef(w, "  %d different table data values found (%.2f%% different).\n", d.Total, d.Ratio*100)
}
