package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/desertthunder/vidsum/internal/formatter"
	"github.com/desertthunder/vidsum/internal/models"
)

// markdownPreview holds settable Markdown content rendered through
// glamour with a light/dark theme toggle. Copy and export are no-ops
// while the content is empty.
type markdownPreview struct {
	content  string
	theme    string
	rendered string
}

func newMarkdownPreview(theme string) *markdownPreview {
	if theme != "dark" {
		theme = "light"
	}
	return &markdownPreview{theme: theme}
}

// SetContent replaces the preview's Markdown source and re-renders.
func (p *markdownPreview) SetContent(content string) {
	p.content = content
	p.render()
}

func (p *markdownPreview) ToggleTheme() {
	if p.theme == "dark" {
		p.theme = "light"
	} else {
		p.theme = "dark"
	}
	p.render()
}

func (p *markdownPreview) render() {
	if p.content == "" {
		p.rendered = ""
		return
	}
	out, err := glamour.Render(p.content, p.theme)
	if err != nil {
		// Fall back to the raw source rather than dropping the content.
		p.rendered = p.content
		return
	}
	p.rendered = out
}

// Copy places the raw Markdown source on the system clipboard.
func (p *markdownPreview) Copy(str Strings) tea.Cmd {
	if p.content == "" {
		return func() tea.Msg { return noteMsg{text: str.NothingToCopy} }
	}
	content := p.content
	return func() tea.Msg {
		if err := clipboard.WriteAll(content); err != nil {
			return noteMsg{err: err}
		}
		return noteMsg{text: str.CopiedNote}
	}
}

// Export writes the content as a timestamped .md file in the working
// directory.
func (p *markdownPreview) Export(str Strings) tea.Cmd {
	if p.content == "" {
		return func() tea.Msg { return noteMsg{text: str.NothingToCopy} }
	}
	content := p.content
	return func() tea.Msg {
		path, err := formatter.WriteMarkdownExport(&models.Summary{MarkdownContent: content}, "")
		if err != nil {
			return noteMsg{err: err}
		}
		return noteMsg{text: fmt.Sprintf(str.ExportedNote, path)}
	}
}

func (p *markdownPreview) View() string {
	return p.rendered
}
