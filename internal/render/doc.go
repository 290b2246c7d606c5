// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package render styles comparison reports for terminal display. Plain
// report text passes through untouched when the writer is not a terminal or
// when color is off, so piped and redirected output stays byte-stable.
package render
