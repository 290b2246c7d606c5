// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package fits holds the in-memory object model consumed by the diff engine:
// container files made of ordered units, each unit carrying an ordered header
// of (keyword, value, comment) cards and optionally one data block. Data is
// tagged as an N-dimensional pixel array, a column-oriented record table, or
// opaque raw bytes.
//
// The package does not parse the on-disk container format. Producing a
// populated model (from a FITS reader, a JSON interchange document, or test
// fixtures) is the caller's job; see the loader package for the JSON form.
//
// Header keywords are case-sensitive and may repeat; Get returns the first
// matching card. Column names are case-insensitive identifiers and are
// assumed unique within one table.
package fits
