// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

// ShowReport runs the pager over a rendered report. It blocks until the user
// quits and returns any terminal error.
func ShowReport(title, report string) error {
	m := model{
		title: title,
		body:  strings.TrimRight(report, "\n"),
		lines: strings.Count(report, "\n"),
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type model struct {
	title string
	body  string
	lines int
	vp    viewport.Model
	ready bool
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "g":
			m.vp.GotoTop()
		case "G":
			m.vp.GotoBottom()
		}

	case tea.WindowSizeMsg:
		// Reserve one line each for the title and the status bar.
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-2)
			m.vp.SetContent(m.body)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - 2
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if !m.ready {
		return "loading..."
	}

	status := fmt.Sprintf(" %s lines  %3.0f%%  ↑/↓ scroll, g/G top/bottom, Q/ESCAPE: quit",
		humanize.Comma(int64(m.lines)), m.vp.ScrollPercent()*100)

	return m.title + "\n" + m.vp.View() + "\n" + status
}
