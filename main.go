// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fitskit/fitsdiff/internal/command"
	"github.com/fitskit/fitsdiff/internal/config"
	"github.com/fitskit/fitsdiff/internal/log"
	"github.com/fitskit/fitsdiff/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)
	args = expandArgSet(args)
	args = deduplicateFlags(args)
	log.Debugf("args after processing: args=%v", args)

	return initAndRunApp(args)
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no arguments are provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// initAndRunApp initializes the app and runs it, returning the exit code:
// 0 for identical files, 1 when differences were found, 2 on error.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 2
	}

	if err := app.Run(ctx, args); err != nil {
		if errors.Is(err, command.ErrDifferences) {
			return 1
		}
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

// expandArgSet expands an @set argument in place with the arguments stored
// under sets.<name> in the config file, so recurring flag bundles can be
// invoked by name (e.g. fitsdiff @strict a.json b.json).
func expandArgSet(args []string) []string {
	idx := -1
	set := ""
	for i, a := range args[1:] {
		if strings.HasPrefix(a, "@") {
			set = a[1:]
			idx = 1 + i
			break
		}
	}
	if idx == -1 {
		return args
	}

	// Remove the @set argument, then splice the set's entries in its place.
	args = append(args[:idx], args[idx+1:]...)
	setArgs, _ := config.GetStringSlice("sets." + set)
	for _, arg := range setArgs {
		parts := strings.Fields(arg)
		args = append(args[:idx], append(parts, args[idx:]...)...)
		idx += len(parts)
	}
	return args
}

// deduplicateFlags keeps only the last occurrence of each repeated flag so
// an @set bundle can be overridden on the command line. Positional
// arguments and unrepeated flags pass through in order.
func deduplicateFlags(args []string) []string {
	if len(args) <= 1 {
		return args
	}

	type token struct {
		key  string // empty for positionals
		args []string
	}

	var tokens []token
	for i := 1; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, "-") {
			tokens = append(tokens, token{args: []string{a}})
			continue
		}

		key := a
		group := []string{a}
		if eq := strings.Index(a, "="); eq != -1 {
			key = a[:eq]
		} else if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			group = append(group, args[i+1])
			i++
		}
		tokens = append(tokens, token{key: key, args: group})
	}

	last := make(map[string]int)
	for i, t := range tokens {
		if t.key != "" {
			last[t.key] = i
		}
	}

	result := args[:1:1]
	for i, t := range tokens {
		if t.key != "" && last[t.key] != i {
			continue
		}
		result = append(result, t.args...)
	}
	return result
}
