// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/fitskit/fitsdiff/internal/fits"
)

// PixelDiff is one sampled differing array position.
type PixelDiff struct {
	Index []int
	A, B  any
}

// ImageDiff is the result of comparing two N-dimensional arrays.
//
// Difference fields:
//   - Shapes: the two shapes, set when they differ; no element comparison is
//     attempted in that case.
//   - Pixels: up to the configured cap of differing positions, in row-major
//     order.
//   - Total / Ratio: the exact count of differing positions and its ratio to
//     the element count, maintained even when Pixels is truncated.
type ImageDiff struct {
	Shapes *[2][]int
	Pixels []PixelDiff
	Total  int
	Ratio  float64
}

// NewImageDiff compares two arrays under the given configuration.
func NewImageDiff(a, b *fits.Image, opts Options) *ImageDiff {
	return newImageDiff(a, b, opts.normalize())
}

func newImageDiff(a, b *fits.Image, opts *options) *ImageDiff {
	d := &ImageDiff{}

	if !slices.Equal(a.Shape, b.Shape) {
		d.Shapes = &[2][]int{a.Shape, b.Shape}
		// No element comparison when the shapes disagree.
		return d
	}

	// A relative tolerance is meaningless for integer or boolean elements,
	// so it only applies when at least one side is floating or complex.
	tolerance := opts.tolerance
	if !a.Pix.Floating() && !b.Pix.Floating() {
		tolerance = 0
	}

	n := a.Pix.Len()
	idxs, total := whereNotClose(n, pixelsDiffer(a.Pix, b.Pix, tolerance), opts.numDiffs)
	d.Total = total
	if total == 0 {
		return d
	}

	d.Pixels = make([]PixelDiff, 0, len(idxs))
	for _, i := range idxs {
		d.Pixels = append(d.Pixels, PixelDiff{
			Index: unravel(i, a.Shape),
			A:     a.Pix.Value(i),
			B:     b.Pix.Value(i),
		})
	}
	d.Ratio = float64(total) / float64(n)
	return d
}

// pixelsDiffer builds the per-position predicate for two pixel views. Two
// integer arrays compare natively so 64-bit values keep full precision;
// every other pairing compares through the complex numeric view.
func pixelsDiffer(a, b fits.Pixels, tolerance float64) func(i int) bool {
	if ia, ok := a.(fits.IntPixels); ok && tolerance == 0 {
		if ib, ok := b.(fits.IntPixels); ok {
			return func(i int) bool { return ia[i] != ib[i] }
		}
	}
	return func(i int) bool { return notClose(a.At(i), b.At(i), tolerance) }
}

// Identical reports whether no differences were recorded.
func (d *ImageDiff) Identical() bool {
	return d.Shapes == nil && d.Total == 0
}

// Report writes the array differences as indented text. Indices print
// 1-based with dimensions reversed, matching the container convention of
// fastest-varying axis first.
func (d *ImageDiff) Report(w io.Writer) {
	if d.Shapes != nil {
		writef(w, "  Data dimensions differ:\n")
		writef(w, "   a: %s\n", formatShape(d.Shapes[0]))
		writef(w, "   b: %s\n", formatShape(d.Shapes[1]))
		writef(w, "  No further data comparison performed.\n")
		return
	}

	if len(d.Pixels) == 0 {
		return
	}

	for _, p := range d.Pixels {
		writef(w, "  Data differs at %s:\n", formatIndex(p.Index))
		reportDiffValues(w, p.A, p.B)
	}

	writef(w, "  ...\n")
	writef(w, "  %d different pixels found (%.2f%% different).\n", d.Total, d.Ratio*100)
}

// formatShape renders a shape as dimension-reversed axis lengths.
func formatShape(shape []int) string {
	parts := make([]string, 0, len(shape))
	for i := len(shape) - 1; i >= 0; i-- {
		parts = append(parts, strconv.Itoa(shape[i]))
	}
	return strings.Join(parts, " x ")
}

// formatIndex renders an array index 1-based with dimensions reversed.
func formatIndex(index []int) string {
	parts := make([]string, 0, len(index))
	for i := len(index) - 1; i >= 0; i-- {
		parts = append(parts, strconv.Itoa(index[i]+1))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
