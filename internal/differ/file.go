// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"io"
	"sort"
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"github.com/fitskit/fitsdiff/internal/fits"
	"github.com/fitskit/fitsdiff/internal/version"
)

// UnitDiffEntry pairs a unit position with its comparison result.
type UnitDiffEntry struct {
	Index int
	Diff  *UnitDiff
}

// FileDiff is the result of comparing two container files. Units are paired
// by position up to the shorter file; units are not matched by name or
// version, so reordered or inserted units surface as positional diffs.
//
// Difference fields: UnitCounts (set when the files hold different numbers
// of units) and Units (one entry per non-identical positional pair).
type FileDiff struct {
	UnitCounts *CountPair
	Units      []UnitDiffEntry

	a, b *fits.File
	opts Options
}

// NewFileDiff compares two container files. The configuration is normalized
// once here and threaded unchanged through every nested comparator.
func NewFileDiff(a, b *fits.File, opts Options) *FileDiff {
	d := &FileDiff{a: a, b: b, opts: opts}
	normalized := opts.normalize()

	if len(a.Units) != len(b.Units) {
		d.UnitCounts = &CountPair{A: len(a.Units), B: len(b.Units)}
	}

	for i := 0; i < min(len(a.Units), len(b.Units)); i++ {
		ud := newUnitDiff(a.Units[i], b.Units[i], normalized)
		if !ud.Identical() {
			d.Units = append(d.Units, UnitDiffEntry{Index: i, Diff: ud})
		}
	}

	return d
}

// Identical reports whether no differences were recorded.
func (d *FileDiff) Identical() bool {
	return d.UnitCounts == nil && len(d.Units) == 0
}

// Report writes the full comparison report: a header naming the two sources
// and the active configuration, then one section per differing unit.
func (d *FileDiff) Report(w io.Writer) {
	writef(w, "\n fitsdiff: %s\n", version.Version)
	writef(w, " a: %s\n b: %s\n", d.a.Source, d.b.Source)

	if len(d.opts.IgnoreKeywords) > 0 {
		writef(w, " Keyword(s) not to be compared:\n%s\n", wrapList(d.opts.IgnoreKeywords))
	}
	if len(d.opts.IgnoreComments) > 0 {
		writef(w, " Keyword(s) whose comments are not to be compared:\n%s\n", wrapList(d.opts.IgnoreComments))
	}
	if len(d.opts.IgnoreFields) > 0 {
		writef(w, " Table column(s) not to be compared:\n%s\n", wrapList(d.opts.IgnoreFields))
	}
	writef(w, " Maximum number of different data values to be reported: %d\n", d.opts.NumDiffs)
	writef(w, " Data comparison level: %g\n", d.opts.Tolerance)

	if d.UnitCounts != nil {
		writef(w, "\nFiles contain different numbers of HDUs:\n")
		writef(w, " a: %d\n", d.UnitCounts.A)
		writef(w, " b: %d\n", d.UnitCounts.B)

		if len(d.Units) == 0 {
			writef(w, "No differences found between common HDUs.\n")
			return
		}
	} else if len(d.Units) == 0 {
		writef(w, "\nNo differences found.\n")
		return
	}

	for _, entry := range d.Units {
		if entry.Index == 0 {
			writef(w, "\nPrimary HDU:\n")
		} else {
			writef(w, "\nExtension HDU %d:\n", entry.Index)
		}
		entry.Diff.Report(w)
	}
}

// wrapList renders a sorted ignore list wrapped and indented two spaces.
func wrapList(items []string) string {
	sorted := make([]string, len(items))
	copy(sorted, items)
	sort.Strings(sorted)

	wrapped := wordwrap.WrapString(strings.Join(sorted, " "), 75)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}
