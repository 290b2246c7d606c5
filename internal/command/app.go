// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/fitskit/fitsdiff/internal/config"
	"github.com/fitskit/fitsdiff/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	sd, _ := os.Getwd()

	// allow short if-style local cfg; no actual outer cfg
	cfg2, _ := config.Load() //nolint
	meta := meta.Meta{
		Args:        args,
		Config:      cfg2,
		Context:     ctx,
		StartingDir: sd,
	}

	// The config file feeds flag value chains; it is optional.
	cfgPath, _ := config.File()

	app := &cli.Command{
		Name:      "fitsdiff",
		Usage:     "compare two FITS container documents",
		UsageText: "fitsdiff [options] a.json b.json",
		ArgsUsage: "a b",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "fitsdiff version info",
				HideDefault: true,
			},
		}, NewDiffFlags(cfgPath)...),
		Action: diffCommandAction,
	}

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}
