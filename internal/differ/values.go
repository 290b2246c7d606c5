// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"math"
	"math/cmplx"
)

// ValuePair holds the two sides of one differing value.
type ValuePair struct {
	A, B any
}

// CountPair holds the two sides of one differing count.
type CountPair struct {
	A, B int
}

// diffValues reports whether two scalar values differ. When both values are
// floating-point they are compared to within the relative tolerance; all
// other pairings (including mismatched types) compare by exact equality.
// Accepted kinds are the model scalars: string, bool, int64, float64, nil.
func diffValues(a, b any, tolerance float64) bool {
	fa, aok := a.(float64)
	fb, bok := b.(float64)
	if aok && bok {
		return notCloseFloat(fa, fb, tolerance)
	}
	return a != b
}

// notCloseFloat is the pure relative comparison: |a-b| > tolerance*|b| with
// zero absolute tolerance.
func notCloseFloat(a, b, tolerance float64) bool {
	if tolerance == 0 {
		return a != b
	}
	return math.Abs(a-b) > tolerance*math.Abs(b)
}

// notClose is notCloseFloat lifted to the complex plane, used for pixel
// comparison where element types may be complex.
func notClose(a, b complex128, tolerance float64) bool {
	if tolerance == 0 {
		return a != b
	}
	return cmplx.Abs(a-b) > tolerance*cmplx.Abs(b)
}

// whereNotClose is the shared divergence locator: it walks positions 0..n-1
// in natural order, counts every position where differs reports true, and
// retains at most keep of them (keep < 0 retains all). The exact total is
// returned regardless of keep, and no side-by-side copy of the inputs is
// ever materialized.
func whereNotClose(n int, differs func(i int) bool, keep int) (idxs []int, total int) {
	for i := 0; i < n; i++ {
		if !differs(i) {
			continue
		}
		total++
		if keep < 0 || len(idxs) < keep {
			idxs = append(idxs, i)
		}
	}
	return idxs, total
}

// unravel converts a flat row-major position into a multi-dimensional index
// for the given shape.
func unravel(i int, shape []int) []int {
	idx := make([]int, len(shape))
	for axis := len(shape) - 1; axis >= 0; axis-- {
		idx[axis] = i % shape[axis]
		i /= shape[axis]
	}
	return idx
}

// rstripValue strips trailing whitespace from string values when the
// configuration asks for it; other kinds pass through untouched.
func rstripValue(v any, ignoreBlanks bool) any {
	if !ignoreBlanks {
		return v
	}
	if s, ok := v.(string); ok {
		return rstrip(s)
	}
	return v
}

func rstrip(s string) string {
	end := len(s)
	for end > 0 {
		switch s[end-1] {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			end--
		default:
			return s[:end]
		}
	}
	return s[:end]
}
