package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/vidsum/internal/formatter"
	"github.com/desertthunder/vidsum/internal/models"
	"github.com/desertthunder/vidsum/internal/services"
)

// summaryPane renders one AI summary in either structured form or as a
// raw Markdown preview. Exactly one of the two is visible at a time.
type summaryPane struct {
	app *App

	gen          int
	loading      bool
	videoID      string
	summary      *models.Summary
	errText      string
	showMarkdown bool
	preview      *markdownPreview
}

func newSummaryPane(app *App) *summaryPane {
	return &summaryPane{
		app:     app,
		preview: newMarkdownPreview(app.theme),
	}
}

// startFromInput resolves a bare ID or URL locally before any network
// call; unresolvable input returns an error and issues no command.
func (p *summaryPane) startFromInput(input string) (tea.Cmd, error) {
	videoID, err := formatter.ExtractVideoID(input)
	if err != nil {
		return nil, err
	}
	return p.start(videoID), nil
}

// start requests a summary for a resolved video ID. The Markdown
// representation is requested alongside so the raw view has server
// content to show.
func (p *summaryPane) start(videoID string) tea.Cmd {
	if !p.app.oracle.IsAuthenticated() {
		p.errText = p.app.str.LoginRequired
		p.summary = nil
		return nil
	}

	p.gen++
	gen := p.gen
	p.loading = true
	p.errText = ""
	p.videoID = videoID
	p.showMarkdown = false

	return func() tea.Msg {
		summary, err := p.app.backend.Summarize(p.app.ctx, videoID, services.FormatMarkdown)
		return summaryResultMsg{gen: gen, videoID: videoID, summary: summary, err: err}
	}
}

func (p *summaryPane) handleResult(msg summaryResultMsg) tea.Cmd {
	if msg.gen != p.gen {
		return nil
	}

	p.loading = false

	if msg.err != nil {
		// A failed request hides any previous summary.
		p.summary = nil
		p.preview.SetContent("")
		p.errText = msg.err.Error()
		return nil
	}

	p.summary = msg.summary
	p.errText = ""
	p.preview.SetContent(formatter.SummaryToMarkdown(msg.summary))
	return nil
}

func (p *summaryPane) toggleView() {
	if p.summary != nil {
		p.showMarkdown = !p.showMarkdown
	}
}

func (p *summaryPane) toggleTheme() {
	p.preview.ToggleTheme()
}

func (p *summaryPane) copy() tea.Cmd {
	return p.preview.Copy(p.app.str)
}

func (p *summaryPane) export() tea.Cmd {
	return p.preview.Export(p.app.str)
}

func (p *summaryPane) view(spinnerView string) string {
	str := p.app.str
	var b strings.Builder

	b.WriteString(styles.title.Render(str.SummaryTitle) + "\n")

	switch {
	case p.loading:
		b.WriteString(spinnerView + " " + str.Summarizing + "\n")
	case p.errText != "":
		b.WriteString(styles.err.Render(fmt.Sprintf(str.ErrorPrefix, p.errText)) + "\n")
	case p.summary == nil:
		b.WriteString(styles.muted.Render(str.SummaryPrompt) + "\n")
	case p.showMarkdown:
		b.WriteString(styles.muted.Render(str.MarkdownLabel) + "\n")
		b.WriteString(p.preview.View() + "\n")
	default:
		b.WriteString(p.renderStructured())
	}

	b.WriteString("\n" + styles.help.Render("v: view • t: theme • c: copy • e: export • esc: back"))
	return b.String()
}

func (p *summaryPane) renderStructured() string {
	str := p.app.str
	s := p.summary
	var b strings.Builder

	if s.VideoURL != "" {
		b.WriteString(styles.muted.Render(s.VideoURL) + "\n\n")
	}

	b.WriteString(s.BriefSummary + "\n\n")

	b.WriteString(styles.ok.Render(str.KeyPointsTitle) + "\n")
	if len(s.KeyPoints) == 0 {
		b.WriteString(styles.muted.Render(str.NoKeyPoints) + "\n")
	} else {
		for _, point := range s.KeyPoints {
			b.WriteString("  • " + point + "\n")
		}
	}

	b.WriteString("\n" + styles.ok.Render(str.MainTopicsTitle) + "\n")
	if len(s.MainTopics) == 0 {
		b.WriteString(styles.muted.Render(str.NoTopics) + "\n")
	} else {
		var badges []string
		for _, topic := range s.MainTopics {
			badges = append(badges, styles.badge.Render(topic))
		}
		b.WriteString(strings.Join(badges, " ") + "\n")
	}

	return b.String()
}
