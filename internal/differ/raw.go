// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import "io"

// ByteDiff is one sampled differing byte position.
type ByteDiff struct {
	Offset int
	A, B   byte
}

// RawDiff is the result of comparing two opaque data blocks as flat byte
// sequences. It shares the divergence locator with ImageDiff but reports
// byte offsets instead of multi-dimensional indices.
//
// Difference fields: Sizes (set when the lengths differ, which stops byte
// comparison), Bytes (capped samples), and the exact Total / Ratio.
type RawDiff struct {
	Sizes *CountPair
	Bytes []ByteDiff
	Total int
	Ratio float64
}

// NewRawDiff compares two byte sequences under the given configuration.
func NewRawDiff(a, b []byte, opts Options) *RawDiff {
	return newRawDiff(a, b, opts.normalize())
}

func newRawDiff(a, b []byte, opts *options) *RawDiff {
	d := &RawDiff{}

	if len(a) != len(b) {
		d.Sizes = &CountPair{A: len(a), B: len(b)}
		return d
	}

	// Bytes are never floating, so the configured tolerance does not apply.
	idxs, total := whereNotClose(len(a), func(i int) bool { return a[i] != b[i] }, opts.numDiffs)
	d.Total = total
	if total == 0 {
		return d
	}

	d.Bytes = make([]ByteDiff, 0, len(idxs))
	for _, i := range idxs {
		d.Bytes = append(d.Bytes, ByteDiff{Offset: i, A: a[i], B: b[i]})
	}
	d.Ratio = float64(total) / float64(len(a))
	return d
}

// Identical reports whether no differences were recorded.
func (d *RawDiff) Identical() bool {
	return d.Sizes == nil && d.Total == 0
}

// Report writes the byte differences as indented text.
func (d *RawDiff) Report(w io.Writer) {
	if d.Sizes != nil {
		writef(w, "  Data sizes differ:\n")
		writef(w, "   a: %d bytes\n", d.Sizes.A)
		writef(w, "   b: %d bytes\n", d.Sizes.B)
		writef(w, "  No further data comparison performed.\n")
		return
	}

	if len(d.Bytes) == 0 {
		return
	}

	for _, p := range d.Bytes {
		writef(w, "  Data differs at byte %d:\n", p.Offset)
		reportDiffValues(w, p.A, p.B)
	}

	writef(w, "  ...\n")
	writef(w, "  %d different bytes found (%.2f%% different).\n", d.Total, d.Ratio*100)
}
