// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"io"

	"github.com/fitskit/fitsdiff/internal/fits"
)

// UnitDiff is the result of comparing one pair of units: the identity
// fields, the headers, and — when both units carry data of an agreeing
// kind — the data.
//
// Difference fields:
//   - Names / Versions / Kinds: identity pairs, set when they differ.
//   - Headers: always set; consult Headers.Identical for its outcome.
//   - Data: an ImageDiff, TableDiff, or RawDiff when data was compared, nil
//     otherwise. Data from units whose declared kinds disagree and are both
//     unrecognized is never compared.
type UnitDiff struct {
	Names    *ValuePair
	Versions *ValuePair
	Kinds    *ValuePair
	Headers  *HeaderDiff
	Data     Diff
}

// NewUnitDiff compares two units under the given configuration.
func NewUnitDiff(a, b *fits.Unit, opts Options) *UnitDiff {
	return newUnitDiff(a, b, opts.normalize())
}

func newUnitDiff(a, b *fits.Unit, opts *options) *UnitDiff {
	d := &UnitDiff{}

	if a.Name != b.Name {
		d.Names = &ValuePair{A: a.Name, B: b.Name}
	}
	if a.Version() != b.Version() {
		d.Versions = &ValuePair{A: a.Version(), B: b.Version()}
	}
	if a.Kind() != b.Kind() {
		d.Kinds = &ValuePair{A: a.Kind(), B: b.Kind()}
	}

	d.Headers = newHeaderDiff(a.Header, b.Header, opts)

	switch {
	case !a.HasData() || !b.HasData():
		// Nothing to compare when either side has no data.
	case a.IsImage() && b.IsImage():
		d.Data = newImageDiff(a.Image, b.Image, opts)
	case a.IsTable() && b.IsTable():
		d.Data = newTableDiff(a.Table, b.Table, opts)
	case d.Kinds == nil && a.Raw != nil && b.Raw != nil:
		d.Data = newRawDiff(a.Raw, b.Raw, opts)
	}

	return d
}

// Identical reports whether no differences were recorded.
func (d *UnitDiff) Identical() bool {
	return d.Names == nil &&
		d.Versions == nil &&
		d.Kinds == nil &&
		d.Headers.Identical() &&
		(d.Data == nil || d.Data.Identical())
}

// Report writes the unit differences as indented text.
func (d *UnitDiff) Report(w io.Writer) {
	if d.Identical() {
		writef(w, " No differences found.\n")
	}
	if d.Kinds != nil {
		writef(w, " Extension types differ:\n  a: %v\n  b: %v\n", d.Kinds.A, d.Kinds.B)
	}
	if d.Names != nil {
		writef(w, " Extension names differ:\n  a: %v\n  b: %v\n", d.Names.A, d.Names.B)
	}
	if d.Versions != nil {
		writef(w, " Extension versions differ:\n  a: %v\n  b: %v\n", d.Versions.A, d.Versions.B)
	}

	if !d.Headers.Identical() {
		writef(w, "\n Headers contain differences:\n")
		d.Headers.Report(w)
	}

	if d.Data != nil && !d.Data.Identical() {
		writef(w, "\n Data contains differences:\n")
		d.Data.Report(w)
	}
}
