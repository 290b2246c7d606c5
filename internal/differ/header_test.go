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

func header(cards ...fits.Card) *fits.Header {
	return fits.NewHeader(cards...)
}

func TestHeaderDiffIdentical(t *testing.T) {
	a := header(
		fits.Card{Keyword: "SIMPLE", Value: true},
		fits.Card{Keyword: "NAXIS", Value: int64(2), Comment: "number of axes"},
	)
	b := header(
		fits.Card{Keyword: "SIMPLE", Value: true},
		fits.Card{Keyword: "NAXIS", Value: int64(2), Comment: "number of axes"},
	)

	d := NewHeaderDiff(a, b, DefaultOptions())
	assert.True(t, d.Identical())
	assert.Equal(t, []string{"NAXIS", "SIMPLE"}, d.CommonKeywords)
}

func TestHeaderDiffCountsAndDuplicates(t *testing.T) {
	a := header(
		fits.Card{Keyword: "NAXIS", Value: int64(2)},
		fits.Card{Keyword: "HISTORY", Value: "first pass"},
	)
	b := header(
		fits.Card{Keyword: "NAXIS", Value: int64(3)},
		fits.Card{Keyword: "HISTORY", Value: "first pass"},
		fits.Card{Keyword: "HISTORY", Value: "second pass"},
	)

	d := NewHeaderDiff(a, b, DefaultOptions())
	require.False(t, d.Identical())

	require.NotNil(t, d.KeywordCounts)
	assert.Equal(t, CountPair{A: 2, B: 3}, *d.KeywordCounts)

	assert.Equal(t, CountPair{A: 1, B: 2}, d.DuplicateKeywords["HISTORY"])

	require.Len(t, d.KeywordValues["NAXIS"], 1)
	assert.Equal(t, &ValuePair{A: int64(2), B: int64(3)}, d.KeywordValues["NAXIS"][0])
}

func TestHeaderDiffExtraKeywords(t *testing.T) {
	a := header(
		fits.Card{Keyword: "SIMPLE", Value: true},
		fits.Card{Keyword: "OBSERVER", Value: "Edwin"},
	)
	b := header(
		fits.Card{Keyword: "SIMPLE", Value: true},
		fits.Card{Keyword: "TELESCOP", Value: "HST"},
	)

	d := NewHeaderDiff(a, b, DefaultOptions())
	assert.Equal(t, []string{"OBSERVER"}, d.ExtraKeywords[0])
	assert.Equal(t, []string{"TELESCOP"}, d.ExtraKeywords[1])
}

func TestHeaderDiffDuplicatePositions(t *testing.T) {
	a := header(
		fits.Card{Keyword: "COMMENT", Value: "one"},
		fits.Card{Keyword: "COMMENT", Value: "two"},
	)
	b := header(
		fits.Card{Keyword: "COMMENT", Value: "one"},
		fits.Card{Keyword: "COMMENT", Value: "2"},
	)

	d := NewHeaderDiff(a, b, DefaultOptions())
	pairs := d.KeywordValues["COMMENT"]
	require.Len(t, pairs, 2)
	assert.Nil(t, pairs[0])
	require.NotNil(t, pairs[1])
	assert.Equal(t, "two", pairs[1].A)
	assert.Equal(t, "2", pairs[1].B)
}

func TestHeaderDiffCommentGating(t *testing.T) {
	a := header(fits.Card{Keyword: "NAXIS", Value: int64(2), Comment: "axes"})
	b := header(fits.Card{Keyword: "NAXIS", Value: int64(2), Comment: "number of axes"})

	d := NewHeaderDiff(a, b, DefaultOptions())
	require.Len(t, d.KeywordComments["NAXIS"], 1)

	// The comment ignore rules gate comments without touching values.
	opts := DefaultOptions()
	opts.IgnoreComments = []string{"NAXIS"}
	d = NewHeaderDiff(a, b, opts)
	assert.True(t, d.Identical())
}

func TestHeaderDiffIgnoreKeywords(t *testing.T) {
	a := header(
		fits.Card{Keyword: "DATE", Value: "2026-01-01"},
		fits.Card{Keyword: "NAXIS1", Value: int64(100)},
	)
	b := header(
		fits.Card{Keyword: "DATE", Value: "2026-01-02"},
		fits.Card{Keyword: "NAXIS1", Value: int64(200)},
	)

	opts := DefaultOptions()
	opts.IgnoreKeywords = []string{"DATE", "NAXIS*"}
	d := NewHeaderDiff(a, b, opts)
	assert.True(t, d.Identical())
}

func TestHeaderDiffIgnoreWildcardIdempotent(t *testing.T) {
	a := header(
		fits.Card{Keyword: "NAXIS1", Value: int64(100)},
		fits.Card{Keyword: "OBJECT", Value: "M31"},
	)
	b := header(
		fits.Card{Keyword: "NAXIS1", Value: int64(200)},
		fits.Card{Keyword: "OBJECT", Value: "M33"},
	)

	opts := DefaultOptions()
	opts.IgnoreKeywords = []string{"NAXIS*"}
	base := NewHeaderDiff(a, b, opts)

	// Adding a keyword already excluded by the pattern changes nothing.
	opts.IgnoreKeywords = []string{"NAXIS*", "NAXIS1"}
	again := NewHeaderDiff(a, b, opts)

	assert.Equal(t, base.KeywordValues, again.KeywordValues)
	assert.Equal(t, base.ExtraKeywords, again.ExtraKeywords)
	assert.Equal(t, base.Identical(), again.Identical())
}

func TestHeaderDiffIgnoreAllKeywords(t *testing.T) {
	a := header(
		fits.Card{Keyword: "ONE", Value: int64(1)},
		fits.Card{Keyword: "TWO", Value: int64(2)},
	)
	b := header(fits.Card{Keyword: "ONE", Value: int64(9)})

	opts := DefaultOptions()
	opts.IgnoreKeywords = []string{"*"}
	d := NewHeaderDiff(a, b, opts)

	// The card counts still differ; everything keyword-level is suppressed.
	require.NotNil(t, d.KeywordCounts)
	assert.Empty(t, d.ExtraKeywords[0])
	assert.Empty(t, d.ExtraKeywords[1])
	assert.Empty(t, d.KeywordValues)
}

func TestHeaderDiffTolerance(t *testing.T) {
	a := header(fits.Card{Keyword: "EXPTIME", Value: 100.0})
	b := header(fits.Card{Keyword: "EXPTIME", Value: 100.5})

	opts := DefaultOptions()
	opts.Tolerance = 0.01
	assert.True(t, NewHeaderDiff(a, b, opts).Identical())

	opts.Tolerance = 0.001
	assert.False(t, NewHeaderDiff(a, b, opts).Identical())
}

func TestHeaderDiffTrailingBlanks(t *testing.T) {
	a := header(fits.Card{Keyword: "OBJECT", Value: "M31   "})
	b := header(fits.Card{Keyword: "OBJECT", Value: "M31"})

	assert.True(t, NewHeaderDiff(a, b, DefaultOptions()).Identical())

	opts := DefaultOptions()
	opts.IgnoreBlanks = false
	assert.False(t, NewHeaderDiff(a, b, opts).Identical())
}

func TestHeaderDiffReport(t *testing.T) {
	a := header(
		fits.Card{Keyword: "NAXIS", Value: int64(2)},
		fits.Card{Keyword: "OBSERVER", Value: "Edwin"},
	)
	b := header(
		fits.Card{Keyword: "NAXIS", Value: int64(3)},
		fits.Card{Keyword: "TELESCOP", Value: "HST"},
		fits.Card{Keyword: "HISTORY", Value: "reprocessed"},
	)

	var sb strings.Builder
	NewHeaderDiff(a, b, DefaultOptions()).Report(&sb)
	report := sb.String()

	assert.Contains(t, report, "  Headers have different number of cards:\n   a: 2\n   b: 3\n")
	assert.Contains(t, report, "  Extra keyword OBSERVER in a\n")
	assert.Contains(t, report, "  Extra keyword TELESCOP in b\n")
	assert.Contains(t, report, "  Extra keyword HISTORY  in b\n")
	assert.Contains(t, report, "  Keyword NAXIS    has different values:\n")
	assert.Contains(t, report, "   a> 2\n")
	assert.Contains(t, report, "   b> 3\n")
}

func TestHeaderDiffReportDuplicateIndex(t *testing.T) {
	a := header(
		fits.Card{Keyword: "HISTORY", Value: "same"},
		fits.Card{Keyword: "HISTORY", Value: "old"},
	)
	b := header(
		fits.Card{Keyword: "HISTORY", Value: "same"},
		fits.Card{Keyword: "HISTORY", Value: "new"},
	)

	var sb strings.Builder
	NewHeaderDiff(a, b, DefaultOptions()).Report(&sb)

	assert.Contains(t, sb.String(), "  Keyword HISTORY [2] has different values:\n")
}
