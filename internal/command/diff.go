// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/fitskit/fitsdiff/internal/differ"
	"github.com/fitskit/fitsdiff/internal/fits"
	"github.com/fitskit/fitsdiff/internal/loader"
	"github.com/fitskit/fitsdiff/internal/render"
	"github.com/fitskit/fitsdiff/internal/source"
	"github.com/fitskit/fitsdiff/internal/tui"
)

// ErrDifferences marks a completed comparison that found differences, so
// main can exit with the conventional diff status without printing an error.
var ErrDifferences = errors.New("differences found")

// diffCommandAction fetches both container documents, compares them, and
// emits the report per the output flags.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := GetMeta(cmd)
	log.Debugf("executing comparison: args=%v", meta.Args)

	locations := cmd.Args().Slice()
	if len(locations) != 2 {
		return fmt.Errorf("expected exactly two container documents, got %d", len(locations))
	}

	a, err := fetchAndParse(ctx, locations[0])
	if err != nil {
		return err
	}
	b, err := fetchAndParse(ctx, locations[1])
	if err != nil {
		return err
	}

	opts := differ.Options{
		IgnoreKeywords: cmd.StringSlice("ignore-keywords"),
		IgnoreComments: cmd.StringSlice("ignore-comments"),
		IgnoreFields:   cmd.StringSlice("ignore-fields"),
		NumDiffs:       cmd.Int("numdiffs"),
		Tolerance:      cmd.Float("tolerance"),
		IgnoreBlanks:   !cmd.Bool("exact"),
	}

	d := differ.NewFileDiff(a, b, opts)

	if err := emitReport(d, cmd); err != nil {
		return err
	}

	if !d.Identical() {
		return ErrDifferences
	}
	return nil
}

// emitReport writes the comparison report to the destination the flags
// select: a file, the interactive pager, or stdout (colored when requested
// and the output is a terminal). --quiet suppresses the report entirely.
func emitReport(d *differ.FileDiff, cmd *cli.Command) error {
	if cmd.Bool("quiet") {
		return nil
	}

	var report strings.Builder
	d.Report(&report)

	if out := cmd.String("output"); out != "" {
		return os.WriteFile(out, []byte(report.String()), 0o644)
	}

	if cmd.Bool("tui") && render.IsTerminal(os.Stdout) {
		text := report.String()
		if cmd.Bool("color") {
			text = render.Colorize(text)
		}
		return tui.ShowReport("fitsdiff", text)
	}

	text := report.String()
	if cmd.Bool("color") && render.IsTerminal(os.Stdout) {
		text = render.Colorize(text)
	}
	_, err := fmt.Fprint(os.Stdout, text)
	return err
}

func fetchAndParse(ctx context.Context, location string) (*fits.File, error) {
	raw, err := source.Fetch(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", location, err)
	}

	file, err := loader.Parse(raw, location)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", location, err)
	}
	return file, nil
}
