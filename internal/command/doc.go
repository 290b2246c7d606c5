// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command wires the CLI surface: flag definitions with their
// environment and config file sources, the root command, and the action
// that fetches two container documents, compares them, and emits the
// report.
package command
