// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"path"
	"strings"
)

// Options is the comparison configuration shared by every comparator in one
// diff tree. It is passed down by reference and never mutated by any layer.
type Options struct {
	// IgnoreKeywords lists header keywords whose presence and values are
	// excluded from comparison. Entries may be shell-style globs. The entry
	// "*" suppresses all keyword, value, and comment differences.
	IgnoreKeywords []string
	// IgnoreComments lists keywords whose comments are excluded from
	// comparison. Globs and "*" behave as in IgnoreKeywords.
	IgnoreComments []string
	// IgnoreFields lists table column names (case-insensitive) to exclude.
	// The entry "*" suppresses all column comparison.
	IgnoreFields []string
	// NumDiffs caps the number of differing data values retained per data
	// comparison. Negative means unbounded. The cap bounds memory, not the
	// exact divergence totals.
	NumDiffs int
	// Tolerance is the relative difference allowed between two floats.
	Tolerance float64
	// IgnoreBlanks strips trailing whitespace from string values before
	// comparison. Leading whitespace is always significant.
	IgnoreBlanks bool
}

// DefaultOptions returns the engine defaults: up to 10 reported values, zero
// tolerance, trailing blanks ignored.
func DefaultOptions() Options {
	return Options{NumDiffs: 10, IgnoreBlanks: true}
}

// options is the normalized, comparison-ready form of Options. Exact entries
// and glob patterns are split once so per-keyword checks stay cheap.
type options struct {
	ignoreKeywords  map[string]struct{}
	keywordPatterns []string
	ignoreComments  map[string]struct{}
	commentPatterns []string
	ignoreFields    map[string]struct{} // lower-cased
	numDiffs        int
	tolerance       float64
	ignoreBlanks    bool
}

// normalize splits ignore lists into exact sets and glob pattern lists.
// The universal "*" stays in the exact set; it is a short-circuit marker,
// not a pattern.
func (o Options) normalize() *options {
	n := &options{
		ignoreKeywords: make(map[string]struct{}),
		ignoreComments: make(map[string]struct{}),
		ignoreFields:   make(map[string]struct{}),
		numDiffs:       o.NumDiffs,
		tolerance:      o.Tolerance,
		ignoreBlanks:   o.IgnoreBlanks,
	}
	for _, kw := range o.IgnoreKeywords {
		if kw != "*" && hasMagic(kw) {
			n.keywordPatterns = append(n.keywordPatterns, kw)
		} else {
			n.ignoreKeywords[kw] = struct{}{}
		}
	}
	for _, kw := range o.IgnoreComments {
		if kw != "*" && hasMagic(kw) {
			n.commentPatterns = append(n.commentPatterns, kw)
		} else {
			n.ignoreComments[kw] = struct{}{}
		}
	}
	for _, f := range o.IgnoreFields {
		n.ignoreFields[strings.ToLower(f)] = struct{}{}
	}
	return n
}

// ignoredKeyword reports whether a keyword is excluded by the exact set or a
// glob pattern.
func (o *options) ignoredKeyword(keyword string) bool {
	if _, ok := o.ignoreKeywords[keyword]; ok {
		return true
	}
	return matchAny(o.keywordPatterns, keyword)
}

// ignoredComment reports whether a keyword's comment is excluded.
func (o *options) ignoredComment(keyword string) bool {
	if _, ok := o.ignoreComments["*"]; ok {
		return true
	}
	if _, ok := o.ignoreComments[keyword]; ok {
		return true
	}
	return matchAny(o.commentPatterns, keyword)
}

// allKeywordsIgnored reports the universal keyword wildcard.
func (o *options) allKeywordsIgnored() bool {
	_, ok := o.ignoreKeywords["*"]
	return ok
}

// allFieldsIgnored reports the universal column wildcard.
func (o *options) allFieldsIgnored() bool {
	_, ok := o.ignoreFields["*"]
	return ok
}

// ignoredField reports whether a column name is excluded. Matching is
// case-insensitive and exact; globs are not supported for column names.
func (o *options) ignoredField(name string) bool {
	_, ok := o.ignoreFields[strings.ToLower(name)]
	return ok
}

// hasMagic reports whether s contains shell glob metacharacters.
func hasMagic(s string) bool {
	return strings.ContainsAny(s, "*?[")
}

// matchAny reports whether s matches any of the glob patterns. Malformed
// patterns never match.
func matchAny(patterns []string, s string) bool {
	for _, p := range patterns {
		if ok, err := path.Match(p, s); err == nil && ok {
			return true
		}
	}
	return false
}
