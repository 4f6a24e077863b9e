package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// staticView renders fixed informational content.
type staticView struct {
	title string
	body  []string
}

func newAboutView(app *App) viewModel {
	return &staticView{
		title: app.str.NavAbout,
		body: []string{
			"vidsum is a terminal client for YouTube search, AI summaries,",
			"and channel subscriptions.",
			"",
			"Search for videos, generate summaries with key points and",
			"topics, preview them as Markdown, and manage the channels you",
			"follow without leaving the terminal.",
		},
	}
}

func newContactView(app *App) viewModel {
	return &staticView{
		title: app.str.NavContact,
		body: []string{
			"Issues and feature requests:",
			"https://github.com/desertthunder/vidsum/issues",
		},
	}
}

func (v *staticView) Init() tea.Cmd { return nil }

func (v *staticView) Update(msg tea.Msg) (viewModel, tea.Cmd) {
	return v, nil
}

func (v *staticView) View() string {
	var b strings.Builder
	b.WriteString(styles.title.Render(v.title) + "\n")
	b.WriteString(strings.Join(v.body, "\n"))
	return b.String()
}
