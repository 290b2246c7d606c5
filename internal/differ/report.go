// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff is the interface every comparator result satisfies: it answers
// whether the two inputs were identical and renders its differences as
// indented text.
type Diff interface {
	Identical() bool
	Report(w io.Writer)
}

// writef writes formatted report text. Report rendering is best-effort;
// write errors from the sink are ignored.
func writef(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}

// formatValue renders a value for report output. Strings render verbatim so
// whitespace differences stay visible in the line diff.
func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// reportDiffValues writes an aligned textual diff of two values. Lines only
// in a are prefixed "a>", lines only in b "b>", and common lines are
// indented unmarked.
func reportDiffValues(w io.Writer, a, b any) {
	sa := formatValue(a)
	sb := formatValue(b)

	dmp := diffmatchpatch.New()
	ca, cb, lineIndex := dmp.DiffLinesToChars(sa, sb)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lineIndex)

	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				writef(w, "   a> %s\n", line)
			case diffmatchpatch.DiffInsert:
				writef(w, "   b> %s\n", line)
			default:
				writef(w, "      %s\n", line)
			}
		}
	}
}

// splitLines splits diff hunk text into individual lines, dropping the
// trailing newline artifact.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
