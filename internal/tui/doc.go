// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package tui provides an interactive scrollable pager for comparison
// reports, for when a report is too long to read as a scrollback dump.
package tui
