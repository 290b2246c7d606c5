// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differ

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitskit/fitsdiff/internal/fits"
)

func table(t *testing.T, cols []fits.Column, data [][]any) *fits.Table {
	t.Helper()
	tbl, err := fits.NewTable(cols, data)
	require.NoError(t, err)
	return tbl
}

func TestTableDiffIdentical(t *testing.T) {
	cols := []fits.Column{{Name: "TIME", Format: "D"}, {Name: "FLUX", Format: "E"}}
	a := table(t, cols, [][]any{{1.0, 2.0}, {10.0, 20.0}})
	b := table(t, cols, [][]any{{1.0, 2.0}, {10.0, 20.0}})

	assert.True(t, NewTableDiff(a, b, DefaultOptions()).Identical())
}

func TestTableDiffExtraColumn(t *testing.T) {
	a := table(t,
		[]fits.Column{{Name: "TIME", Format: "D"}, {Name: "FLUX", Format: "E"}},
		[][]any{{1.0}, {10.0}})
	b := table(t,
		[]fits.Column{{Name: "TIME", Format: "D"}},
		[][]any{{1.0}})

	d := NewTableDiff(a, b, DefaultOptions())
	require.False(t, d.Identical())
	require.NotNil(t, d.ColumnCounts)
	assert.Equal(t, CountPair{A: 2, B: 1}, *d.ColumnCounts)
	require.Len(t, d.ExtraColumns[0], 1)
	assert.Equal(t, "FLUX", d.ExtraColumns[0][0].Name)
	assert.Empty(t, d.ExtraColumns[1])

	// The common column is still compared despite the count mismatch.
	assert.Equal(t, []string{"time"}, d.CommonColumns)
}

func TestTableDiffColumnNamesCaseInsensitive(t *testing.T) {
	a := table(t, []fits.Column{{Name: "Flux", Format: "E"}}, [][]any{{1.0}})
	b := table(t, []fits.Column{{Name: "FLUX", Format: "E"}}, [][]any{{1.0}})

	d := NewTableDiff(a, b, DefaultOptions())
	assert.True(t, d.Identical())
	assert.Equal(t, []string{"flux"}, d.CommonColumns)
}

func TestTableDiffAttrDiffs(t *testing.T) {
	a := table(t, []fits.Column{{Name: "FLUX", Format: "E", Unit: "Jy"}}, [][]any{{1.0}})
	b := table(t, []fits.Column{{Name: "FLUX", Format: "D", Unit: "mJy"}}, [][]any{{1.0}})

	d := NewTableDiff(a, b, DefaultOptions())
	require.Len(t, d.AttrDiffs, 2)
	assert.Equal(t, ColumnAttrDiff{Column: "FLUX", What: "formats", A: "E", B: "D"}, d.AttrDiffs[0])
	assert.Equal(t, ColumnAttrDiff{Column: "FLUX", What: "units", A: "Jy", B: "mJy"}, d.AttrDiffs[1])
}

func TestTableDiffCellValues(t *testing.T) {
	cols := []fits.Column{{Name: "NAME", Format: "A"}, {Name: "COUNT", Format: "J"}}
	a := table(t, cols, [][]any{{"alpha", "beta"}, {int64(1), int64(2)}})
	b := table(t, cols, [][]any{{"alpha", "gamma"}, {int64(1), int64(5)}})

	d := NewTableDiff(a, b, DefaultOptions())
	assert.Equal(t, 2, d.Total)
	require.Len(t, d.Values, 2)

	// Columns compare in sorted common-name order.
	assert.Equal(t, CellDiff{Column: "COUNT", Row: 1, A: int64(2), B: int64(5)}, d.Values[0])
	assert.Equal(t, CellDiff{Column: "NAME", Row: 1, A: "beta", B: "gamma"}, d.Values[1])

	assert.InDelta(t, 0.5, d.Ratio, 1e-12)
}

func TestTableDiffFloatTolerance(t *testing.T) {
	cols := []fits.Column{{Name: "FLUX", Format: "E"}}
	a := table(t, cols, [][]any{{100.0}})
	b := table(t, cols, [][]any{{100.5}})

	opts := DefaultOptions()
	opts.Tolerance = 0.01
	assert.True(t, NewTableDiff(a, b, opts).Identical())

	opts.Tolerance = 0.001
	assert.False(t, NewTableDiff(a, b, opts).Identical())
}

func TestTableDiffIntColumnIsExact(t *testing.T) {
	cols := []fits.Column{{Name: "COUNT", Format: "J"}}
	a := table(t, cols, [][]any{{int64(100)}})
	b := table(t, cols, [][]any{{int64(101)}})

	opts := DefaultOptions()
	opts.Tolerance = 0.5
	assert.Equal(t, 1, NewTableDiff(a, b, opts).Total)
}

func TestTableDiffVariableLengthColumn(t *testing.T) {
	cols := []fits.Column{{Name: "SPEC", Format: "PD()"}}
	a := table(t, cols, [][]any{{[]float64{1.0, 2.0}, []float64{3.0}}})
	b := table(t, cols, [][]any{{[]float64{1.0001, 2.0}, []float64{3.0, 4.0}}})

	// Variable-length columns honor the tolerance element-wise; rows whose
	// value counts differ always differ.
	opts := DefaultOptions()
	opts.Tolerance = 0.01
	d := NewTableDiff(a, b, opts)
	assert.Equal(t, 1, d.Total)
	require.Len(t, d.Values, 1)
	assert.Equal(t, 1, d.Values[0].Row)
}

func TestTableDiffGlobalCapAcrossColumns(t *testing.T) {
	cols := []fits.Column{{Name: "A1", Format: "J"}, {Name: "B1", Format: "J"}}
	a := table(t, cols, [][]any{
		{int64(0), int64(0), int64(0)},
		{int64(0), int64(0), int64(0)},
	})
	b := table(t, cols, [][]any{
		{int64(1), int64(1), int64(1)},
		{int64(1), int64(1), int64(1)},
	})

	opts := DefaultOptions()
	opts.NumDiffs = 4
	d := NewTableDiff(a, b, opts)

	assert.Len(t, d.Values, 4)
	assert.Equal(t, 6, d.Total)
}

func TestTableDiffIgnoreFields(t *testing.T) {
	cols := []fits.Column{{Name: "TIME", Format: "D"}, {Name: "DQ_FLAGS", Format: "J"}}
	a := table(t, cols, [][]any{{1.0}, {int64(0)}})
	b := table(t, cols, [][]any{{1.0}, {int64(16)}})

	opts := DefaultOptions()
	opts.IgnoreFields = []string{"dq_flags"}
	assert.True(t, NewTableDiff(a, b, opts).Identical())
}

func TestTableDiffIgnoreAllFields(t *testing.T) {
	a := table(t, []fits.Column{{Name: "X", Format: "J"}}, [][]any{{int64(1)}})
	b := table(t, []fits.Column{{Name: "Y", Format: "J"}, {Name: "Z", Format: "J"}},
		[][]any{{int64(2)}, {int64(3)}})

	opts := DefaultOptions()
	opts.IgnoreFields = []string{"*"}
	d := NewTableDiff(a, b, opts)

	// Only the column count survives the universal wildcard.
	require.NotNil(t, d.ColumnCounts)
	assert.Empty(t, d.ExtraColumns[0])
	assert.Empty(t, d.ExtraColumns[1])
	assert.Zero(t, d.Total)
}

func TestTableDiffTrailingBlanks(t *testing.T) {
	cols := []fits.Column{{Name: "NAME", Format: "A8"}}
	a := table(t, cols, [][]any{{"M31   "}})
	b := table(t, cols, [][]any{{"M31"}})

	assert.True(t, NewTableDiff(a, b, DefaultOptions()).Identical())

	opts := DefaultOptions()
	opts.IgnoreBlanks = false
	assert.False(t, NewTableDiff(a, b, opts).Identical())
}

func TestTableDiffReport(t *testing.T) {
	a := table(t,
		[]fits.Column{{Name: "TIME", Format: "D"}, {Name: "FLUX", Format: "E"}},
		[][]any{{1.0, 2.0}, {10.0, 20.0}})
	b := table(t,
		[]fits.Column{{Name: "TIME", Format: "D"}},
		[][]any{{1.0, 2.5}})

	var sb strings.Builder
	NewTableDiff(a, b, DefaultOptions()).Report(&sb)
	report := sb.String()

	assert.Contains(t, report, "  Tables have different number of columns:\n   a: 2\n   b: 1\n")
	assert.Contains(t, report, "  Extra column FLUX of format E in a\n")
	assert.Contains(t, report, "  Column TIME data differs in row 1:\n")
	assert.Contains(t, report, "   a> 2\n")
	assert.Contains(t, report, "   b> 2.5\n")
	assert.Contains(t, report, "  1 different table data values found (25.00% different).\n")
}

func TestTableDiffReportAdditionalDifferences(t *testing.T) {
	cols := []fits.Column{{Name: "X", Format: "J"}}
	a := table(t, cols, [][]any{{int64(0), int64(0), int64(0)}})
	b := table(t, cols, [][]any{{int64(1), int64(1), int64(1)}})

	opts := DefaultOptions()
	opts.NumDiffs = 1
	var sb strings.Builder
	NewTableDiff(a, b, opts).Report(&sb)

	assert.Contains(t, sb.String(), "  ...2 additional difference(s) found.\n")
}
