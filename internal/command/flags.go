// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/fitskit/fitsdiff/internal/config"
	"github.com/fitskit/fitsdiff/internal/differ"
)

// NewDiffFlags constructs the full flag set for the diff command. Scalar
// flags resolve explicit flag > environment > config file > built-in
// default; cfgPath is the YAML config file and may be empty when none
// exists. List flags take their defaults from the loaded config directly.
func NewDiffFlags(cfgPath string) (flags []cli.Flag) {
	ignoreKeywords, _ := config.GetStringSlice("ignore.keywords", nil)
	ignoreComments, _ := config.GetStringSlice("ignore.comments", nil)
	ignoreFields, _ := config.GetStringSlice("ignore.fields", nil)

	defaults := differ.DefaultOptions()

	flags = []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "ignore-keywords",
			Aliases: []string{"k"},
			Usage:   "header keywords not to be compared; * patterns allowed",
			Value:   ignoreKeywords,
		},
		&cli.StringSliceFlag{
			Name:    "ignore-comments",
			Aliases: []string{"c"},
			Usage:   "keywords whose comments are not to be compared; * patterns allowed",
			Value:   ignoreComments,
		},
		&cli.StringSliceFlag{
			Name:    "ignore-fields",
			Aliases: []string{"f"},
			Usage:   "table columns not to be compared, by name",
			Value:   ignoreFields,
		},
		valueChainIntFlag(&cli.IntFlag{
			Name:    "numdiffs",
			Aliases: []string{"n"},
			Usage:   "maximum number of data differences to report per unit; -1 for all",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("FITSDIFF_NUMDIFFS"),
			),
			Value: defaults.NumDiffs,
		}, "numdiffs", cfgPath),
		valueChainFloatFlag(&cli.FloatFlag{
			Name:    "tolerance",
			Aliases: []string{"d"},
			Usage:   "relative tolerance within which floating point values compare equal",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("FITSDIFF_TOLERANCE"),
			),
			Value: defaults.Tolerance,
		}, "tolerance", cfgPath),
		&cli.BoolFlag{
			Name:  "exact",
			Usage: "compare trailing whitespace in string values",
			Value: false,
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "suppress the report; the exit status alone tells identical from different",
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "write the report to a file instead of stdout",
		},
		&cli.BoolFlag{
			Name:  "color",
			Usage: "enable colored report output on terminals",
			Value: false,
		},
		&cli.BoolFlag{
			Name:  "tui",
			Usage: "browse the report in an interactive pager",
			Value: false,
		},
	}

	return
}

// valueChainIntFlag appends a config file source to the flag's Sources
// chain. With no config file the flag keeps its env and built-in sources.
func valueChainIntFlag(flag *cli.IntFlag, key string, path string) *cli.IntFlag {
	if path == "" {
		return flag
	}

	src := yaml.YAML(key, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}

// valueChainFloatFlag appends a config file source to the flag's Sources
// chain. With no config file the flag keeps its env and built-in sources.
func valueChainFloatFlag(flag *cli.FloatFlag, key string, path string) *cli.FloatFlag {
	if path == "" {
		return flag
	}

	src := yaml.YAML(key, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
