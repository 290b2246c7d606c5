// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"image/color"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"golang.org/x/term"

	"github.com/fitskit/fitsdiff/internal/config"
)

// Colorize styles a report for terminal display. Lines carrying side a
// values (" a:", "a>") and side b values (" b:", "b>") get their own
// foreground colors; section headings render bold. Everything else passes
// through unchanged.
func Colorize(report string) string {
	aColor, bColor := getColors("report.colors")

	var (
		aStyle       = lipgloss.NewStyle().Foreground(aColor)
		bStyle       = lipgloss.NewStyle().Foreground(bColor)
		headingStyle = lipgloss.NewStyle().Bold(true)
	)

	lines := strings.Split(report, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		switch {
		case strings.HasPrefix(trimmed, "a:") || strings.HasPrefix(trimmed, "a>"):
			lines[i] = aStyle.Render(line)
		case strings.HasPrefix(trimmed, "b:") || strings.HasPrefix(trimmed, "b>"):
			lines[i] = bStyle.Render(line)
		case strings.HasPrefix(line, "Primary HDU:") || strings.HasPrefix(line, "Extension HDU"):
			lines[i] = headingStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// IsTerminal reports whether the file writes to an interactive terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// getColors returns the side a and side b colors for report rendering. Each
// color is selected based on terminal background brightness so that output
// stays visible for all(?) terminal themes, with explicit config values
// winning over the defaults.
func getColors(key string) (a, b color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	a = resolveColor(key+".a", "#b00020", "#ff6e6e")
	b = resolveColor(key+".b", "#006644", "#50fa7b")

	return
}
