// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"
	"io"
	"sort"

	"github.com/fitskit/fitsdiff/internal/fits"
)

// HeaderDiff is the result of comparing two headers.
//
// Difference fields:
//   - KeywordCounts: total card counts, set when they differ.
//   - ExtraKeywords: keywords present in exactly one header after ignore
//     filtering; [0] only in a, [1] only in b, both sorted.
//   - DuplicateKeywords: per keyword, the two duplicate counts when they
//     differ.
//   - KeywordValues: per keyword, positional value differences among the
//     keyword's duplicates. Entries are nil at positions that matched;
//     keywords whose positions all matched are absent entirely.
//   - KeywordComments: like KeywordValues, for comments, gated by the
//     comment ignore rules independently of the value rules.
//
// CommonKeywords lists the sorted intersection of the two keyword sets. It
// is computed before ignore filtering and fixes the report ordering; it is
// not a difference field.
type HeaderDiff struct {
	CommonKeywords    []string
	KeywordCounts     *CountPair
	ExtraKeywords     [2][]string
	DuplicateKeywords map[string]CountPair
	KeywordValues     map[string][]*ValuePair
	KeywordComments   map[string][]*ValuePair
}

// NewHeaderDiff compares two headers under the given configuration.
func NewHeaderDiff(a, b *fits.Header, opts Options) *HeaderDiff {
	return newHeaderDiff(a, b, opts.normalize())
}

func newHeaderDiff(a, b *fits.Header, opts *options) *HeaderDiff {
	d := &HeaderDiff{
		DuplicateKeywords: make(map[string]CountPair),
		KeywordValues:     make(map[string][]*ValuePair),
		KeywordComments:   make(map[string][]*ValuePair),
	}

	valuesA, commentsA := headerIndex(a, opts.ignoreBlanks)
	valuesB, commentsB := headerIndex(b, opts.ignoreBlanks)

	// The common keyword list reflects true structural overlap, so it is
	// computed before any ignore filtering.
	for kw := range valuesA {
		if _, ok := valuesB[kw]; ok {
			d.CommonKeywords = append(d.CommonKeywords, kw)
		}
	}
	sort.Strings(d.CommonKeywords)

	if a.Len() != b.Len() {
		d.KeywordCounts = &CountPair{A: a.Len(), B: b.Len()}
	}

	// Every remaining diff field excludes ignored keywords.
	if opts.allKeywordsIgnored() {
		return d
	}

	var onlyA, onlyB []string
	for kw := range valuesA {
		if _, ok := valuesB[kw]; !ok && !opts.ignoredKeyword(kw) {
			onlyA = append(onlyA, kw)
		}
	}
	for kw := range valuesB {
		if _, ok := valuesA[kw]; !ok && !opts.ignoredKeyword(kw) {
			onlyB = append(onlyB, kw)
		}
	}
	sort.Strings(onlyA)
	sort.Strings(onlyB)
	d.ExtraKeywords = [2][]string{onlyA, onlyB}

	for _, kw := range d.CommonKeywords {
		if opts.ignoredKeyword(kw) {
			continue
		}

		va, vb := valuesA[kw], valuesB[kw]
		if len(va) != len(vb) {
			d.DuplicateKeywords[kw] = CountPair{A: len(va), B: len(vb)}
		}

		// Duplicates are compared positionally; a nil entry marks a position
		// with no difference so later positions keep their index.
		if pairs, any := zipDiffs(va, vb, opts.tolerance); any {
			d.KeywordValues[kw] = pairs
		}

		if opts.ignoredComment(kw) {
			continue
		}
		if pairs, any := zipDiffs(commentsA[kw], commentsB[kw], 0); any {
			d.KeywordComments[kw] = pairs
		}
	}

	return d
}

// headerIndex groups a header's values and comments by keyword, preserving
// duplicate order. Trailing blanks are stripped from string values before
// grouping when configured, so stripping affects duplicate grouping too.
func headerIndex(h *fits.Header, ignoreBlanks bool) (values, comments map[string][]any) {
	values = make(map[string][]any)
	comments = make(map[string][]any)
	for _, c := range h.Cards() {
		values[c.Keyword] = append(values[c.Keyword], rstripValue(c.Value, ignoreBlanks))
		comments[c.Keyword] = append(comments[c.Keyword], c.Comment)
	}
	return values, comments
}

// zipDiffs compares two duplicate-value lists position by position up to the
// shorter length. The result has one entry per compared position: the
// differing pair, or nil when that position matched. any is false when every
// position matched, in which case the all-nil list should be dropped.
func zipDiffs(va, vb []any, tolerance float64) (pairs []*ValuePair, any bool) {
	n := min(len(va), len(vb))
	pairs = make([]*ValuePair, 0, n)
	for i := 0; i < n; i++ {
		if diffValues(va[i], vb[i], tolerance) {
			pairs = append(pairs, &ValuePair{A: va[i], B: vb[i]})
			any = true
		} else {
			pairs = append(pairs, nil)
		}
	}
	return pairs, any
}

// Identical reports whether no differences were recorded.
func (d *HeaderDiff) Identical() bool {
	return d.KeywordCounts == nil &&
		len(d.ExtraKeywords[0]) == 0 &&
		len(d.ExtraKeywords[1]) == 0 &&
		len(d.DuplicateKeywords) == 0 &&
		len(d.KeywordValues) == 0 &&
		len(d.KeywordComments) == 0
}

// Report writes the header differences as indented text.
func (d *HeaderDiff) Report(w io.Writer) {
	if d.KeywordCounts != nil {
		writef(w, "  Headers have different number of cards:\n")
		writef(w, "   a: %d\n", d.KeywordCounts.A)
		writef(w, "   b: %d\n", d.KeywordCounts.B)
	}

	for _, kw := range d.ExtraKeywords[0] {
		writef(w, "  Extra keyword %-8s in a\n", kw)
	}
	for _, kw := range d.ExtraKeywords[1] {
		writef(w, "  Extra keyword %-8s in b\n", kw)
	}

	for _, kw := range sortedKeys(d.DuplicateKeywords) {
		count := d.DuplicateKeywords[kw]
		writef(w, "  Inconsistent duplicates of keyword %-8s:\n", kw)
		writef(w, "   Occurs %d times in a, %d times in b\n", count.A, count.B)
	}

	if len(d.KeywordValues) == 0 && len(d.KeywordComments) == 0 {
		return
	}
	for _, kw := range d.CommonKeywords {
		reportKeywordPairs(w, "values", kw, d.KeywordValues[kw])
		reportKeywordPairs(w, "comments", kw, d.KeywordComments[kw])
	}
}

// reportKeywordPairs writes the positional differences for one keyword.
// Positions past the first carry a 1-based duplicate index.
func reportKeywordPairs(w io.Writer, what, keyword string, pairs []*ValuePair) {
	for i, p := range pairs {
		if p == nil {
			continue
		}
		ind := ""
		if i > 0 {
			ind = fmt.Sprintf("[%d]", i+1)
		}
		writef(w, "  Keyword %-8s%s has different %s:\n", keyword, ind, what)
		reportDiffValues(w, p.A, p.B)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
