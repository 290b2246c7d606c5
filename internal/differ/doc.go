// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ computes and renders differences between two container
// files, two headers, or two data blocks.
//
// The comparators form a hierarchy mirroring the container structure:
//
//   - FileDiff: unit counts, then positional pairs of UnitDiff.
//   - UnitDiff: identity fields, HeaderDiff, and one data diff variant chosen
//     by the units' data kind.
//   - HeaderDiff: keyword sets, per-keyword duplicate counts, values and
//     comments, subject to exact and glob ignore rules.
//   - ImageDiff / RawDiff: shape (or size) mismatch short-circuit, then
//     per-element near-equality with an exact divergence total and a capped
//     sample list.
//   - TableDiff: column sets, column attributes, and per-row per-column
//     values with a global sample cap.
//
// Every comparator runs eagerly at construction from two frozen inputs and a
// shared read-only Options value; the result is immutable afterward, answers
// Identical, and renders itself as indented text with Report. Results may be
// shared and reported from concurrently.
//
// Tolerances are relative: two floats differ when |a-b| > tolerance*|b|.
// For data blocks whose element types are not floating-point or complex the
// configured tolerance is ignored and comparison is exact.
package differ
