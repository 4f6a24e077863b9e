package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/vidsum/internal/models"
	"github.com/desertthunder/vidsum/internal/shared"
)

// homeMode tracks which part of the home view owns the keyboard.
type homeMode int

const (
	modeSearchInput homeMode = iota
	modeBrowse
	modeSummaryInput
	modeSummary
)

// afterOptions are the published-after presets, in days back from now.
var afterOptions = []int{7, 30, 90, 365}

// homeView is the "/" page: the search component, the result list, the
// summary pane, and the click-counter demo.
type homeView struct {
	app  *App
	mode homeMode

	input       textinput.Model
	sumInput    textinput.Model
	spin        spinner.Model
	loading     bool
	gen         int
	videos      []models.VideoResult
	results     list.Model
	haveResults bool
	searched    bool
	errText     string

	filterIdx int // 0 = all channels
	afterIdx  int
	maxIdx    int

	busyChannel string
	summary     *summaryPane
	counter     counter
}

func newHomeView(app *App) viewModel {
	input := textinput.New()
	input.Placeholder = app.str.SearchPrompt
	input.CharLimit = 200
	input.Focus()

	sumInput := textinput.New()
	sumInput.Placeholder = app.str.SummaryPrompt
	sumInput.CharLimit = 120

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &homeView{
		app:      app,
		mode:     modeSearchInput,
		input:    input,
		sumInput: sumInput,
		spin:     spin,
		afterIdx: 1, // last 30 days
		summary:  newSummaryPane(app),
	}
}

func (v *homeView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *homeView) capturesInput() bool {
	return v.mode == modeSearchInput || v.mode == modeSummaryInput
}

func (v *homeView) Update(msg tea.Msg) (viewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if v.haveResults {
			v.results.SetSize(msg.Width-4, msg.Height-14)
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)

	case spinner.TickMsg:
		if v.loading || v.summary.loading {
			var cmd tea.Cmd
			v.spin, cmd = v.spin.Update(msg)
			return v, cmd
		}
		return v, nil

	case searchResultsMsg:
		return v.handleResults(msg)

	case summaryResultMsg:
		if cmd := v.summary.handleResult(msg); cmd != nil {
			return v, cmd
		}
		return v, nil

	case subToggledMsg:
		return v.handleSubToggled(msg)
	}

	if v.mode == modeSearchInput {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	if v.mode == modeSummaryInput {
		var cmd tea.Cmd
		v.sumInput, cmd = v.sumInput.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *homeView) handleKey(msg tea.KeyMsg) (viewModel, tea.Cmd) {
	switch v.mode {
	case modeSearchInput:
		switch msg.String() {
		case "enter":
			return v, v.submitSearch()
		case "esc":
			v.input.Blur()
			v.mode = modeBrowse
			return v, nil
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd

	case modeSummaryInput:
		switch msg.String() {
		case "enter":
			return v, v.submitSummaryInput()
		case "esc":
			v.sumInput.Blur()
			v.mode = modeBrowse
			return v, nil
		}
		var cmd tea.Cmd
		v.sumInput, cmd = v.sumInput.Update(msg)
		return v, cmd

	case modeSummary:
		return v.handleSummaryKeys(msg)
	}

	return v.handleBrowseKeys(msg)
}

func (v *homeView) handleBrowseKeys(msg tea.KeyMsg) (viewModel, tea.Cmd) {
	switch msg.String() {
	case "/":
		v.mode = modeSearchInput
		return v, v.input.Focus()
	case "i":
		v.mode = modeSummaryInput
		v.sumInput.SetValue("")
		return v, v.sumInput.Focus()
	case "f":
		v.cycleFilter()
		return v, nil
	case "d":
		v.afterIdx = (v.afterIdx + 1) % len(afterOptions)
		return v, nil
	case "m":
		v.maxIdx = (v.maxIdx + 1) % len(models.MaxResultsOptions)
		return v, nil
	case "+":
		v.counter.increment()
		return v, nil
	case "s", "enter":
		if video, ok := v.selectedVideo(); ok {
			v.mode = modeSummary
			return v, tea.Batch(v.summary.start(video.ID), v.spin.Tick)
		}
		return v, nil
	case "b":
		return v, v.toggleSubscription()
	case "o":
		if video, ok := v.selectedVideo(); ok {
			url := video.URL
			return v, func() tea.Msg {
				if err := shared.OpenBrowser(url); err != nil {
					return noteMsg{err: err}
				}
				return noteMsg{text: url}
			}
		}
		return v, nil
	}

	if v.haveResults {
		var cmd tea.Cmd
		v.results, cmd = v.results.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *homeView) handleSummaryKeys(msg tea.KeyMsg) (viewModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.mode = modeBrowse
		return v, nil
	case "v":
		v.summary.toggleView()
		return v, nil
	case "t":
		v.summary.toggleTheme()
		return v, nil
	case "c":
		return v, v.summary.copy()
	case "e":
		return v, v.summary.export()
	}
	return v, nil
}

// submitSearch validates softly: an empty query is a silent no-op, a
// missing session is an inline error. Each submission bumps the search
// generation so a stale in-flight response cannot clobber a newer one.
func (v *homeView) submitSearch() tea.Cmd {
	query := strings.TrimSpace(v.input.Value())
	if query == "" {
		return nil
	}
	if !v.app.oracle.IsAuthenticated() {
		v.errText = v.app.str.LoginRequired
		return nil
	}

	q := models.SearchQuery{
		Query:          query,
		PublishedAfter: time.Now().AddDate(0, 0, -afterOptions[v.afterIdx]),
		MaxResults:     models.MaxResultsOptions[v.maxIdx],
		ChannelID:      v.selectedChannelID(),
	}

	v.gen++
	gen := v.gen
	v.loading = true
	v.errText = ""
	v.input.Blur()
	v.mode = modeBrowse

	return tea.Batch(v.spin.Tick, func() tea.Msg {
		videos, err := v.app.backend.Search(v.app.ctx, q)
		return searchResultsMsg{gen: gen, videos: videos, err: err}
	})
}

func (v *homeView) handleResults(msg searchResultsMsg) (viewModel, tea.Cmd) {
	if msg.gen != v.gen {
		// A newer search superseded this response.
		return v, nil
	}

	v.loading = false
	v.searched = true

	if msg.err != nil {
		v.errText = msg.err.Error()
		v.haveResults = false
		v.videos = nil
		return v, nil
	}

	v.errText = ""
	v.videos = msg.videos
	v.haveResults = len(msg.videos) > 0

	items := make([]list.Item, len(msg.videos))
	for i, video := range msg.videos {
		items[i] = videoItem{video: video, locale: v.app.locale}
	}
	v.results = list.New(items, list.NewDefaultDelegate(), 0, 0)
	v.results.Title = fmt.Sprintf(v.app.str.ResultsCount, len(msg.videos))
	v.results.SetShowHelp(false)
	v.results.SetSize(v.app.width-4, v.app.height-14)
	return v, nil
}

func (v *homeView) submitSummaryInput() tea.Cmd {
	input := strings.TrimSpace(v.sumInput.Value())
	if input == "" {
		return nil
	}

	cmd, err := v.summary.startFromInput(input)
	if err != nil {
		v.errText = v.app.str.InvalidVideo
		return nil
	}

	v.errText = ""
	v.sumInput.Blur()
	v.mode = modeSummary
	return tea.Batch(cmd, v.spin.Tick)
}

// toggleSubscription flips the selected card's channel membership. The
// set only changes after the backend confirms; the control stays disabled
// while the call is in flight.
func (v *homeView) toggleSubscription() tea.Cmd {
	video, ok := v.selectedVideo()
	if !ok || video.ChannelID == "" {
		return nil
	}
	if !v.app.oracle.IsAuthenticated() {
		v.errText = v.app.str.LoginRequired
		return nil
	}
	if v.busyChannel != "" {
		return nil
	}

	channelID := video.ChannelID
	v.busyChannel = channelID
	subscribed := v.app.subs.Contains(channelID)

	return func() tea.Msg {
		if subscribed {
			err := v.app.backend.Unsubscribe(v.app.ctx, channelID)
			return subToggledMsg{channelID: channelID, subscribed: false, err: err}
		}
		sub, err := v.app.backend.Subscribe(v.app.ctx, channelID)
		return subToggledMsg{channelID: channelID, subscribed: true, sub: sub, err: err}
	}
}

func (v *homeView) handleSubToggled(msg subToggledMsg) (viewModel, tea.Cmd) {
	v.busyChannel = ""

	if msg.err != nil {
		v.errText = msg.err.Error()
		return v, nil
	}

	if msg.subscribed && msg.sub != nil {
		v.app.subs.Add(*msg.sub)
	} else if !msg.subscribed {
		v.app.subs.Remove(msg.channelID)
		if v.filterIdx > v.app.subs.Len() {
			v.filterIdx = 0
		}
	}
	return v, nil
}

func (v *homeView) cycleFilter() {
	// Index 0 is "all channels"; the rest follow the title-sorted set.
	v.filterIdx = (v.filterIdx + 1) % (v.app.subs.Len() + 1)
}

func (v *homeView) selectedChannelID() string {
	if v.filterIdx == 0 {
		return ""
	}
	subs := v.app.subs.List()
	if v.filterIdx-1 >= len(subs) {
		return ""
	}
	return subs[v.filterIdx-1].ChannelID
}

func (v *homeView) filterLabel() string {
	if v.filterIdx == 0 {
		return v.app.str.FilterAll
	}
	subs := v.app.subs.List()
	if v.filterIdx-1 >= len(subs) {
		return v.app.str.FilterAll
	}
	return subs[v.filterIdx-1].ChannelTitle
}

func (v *homeView) selectedVideo() (models.VideoResult, bool) {
	if !v.haveResults {
		return models.VideoResult{}, false
	}
	item, ok := v.results.SelectedItem().(videoItem)
	if !ok {
		return models.VideoResult{}, false
	}
	return item.video, true
}

func (v *homeView) View() string {
	if v.mode == modeSummary {
		return v.summary.view(v.spin.View())
	}

	var b strings.Builder

	b.WriteString(styles.title.Render(v.app.str.NavHome) + "\n")

	if v.mode == modeSummaryInput {
		b.WriteString(v.sumInput.View() + "\n")
		b.WriteString(styles.help.Render("enter: summarize • esc: back") + "\n")
		return b.String()
	}

	b.WriteString(v.input.View() + "\n")
	b.WriteString(styles.muted.Render(fmt.Sprintf(
		"filter: %s • last %d days • max %d",
		v.filterLabel(), afterOptions[v.afterIdx], models.MaxResultsOptions[v.maxIdx],
	)) + "\n\n")

	switch {
	case v.loading:
		b.WriteString(v.spin.View() + " " + v.app.str.Searching + "\n")
	case v.errText != "":
		b.WriteString(styles.err.Render(fmt.Sprintf(v.app.str.ErrorPrefix, v.errText)) + "\n")
	case v.haveResults:
		b.WriteString(v.results.View() + "\n")
		b.WriteString(styles.help.Render("s: summarize • b: subscribe • o: watch • /: search • i: summarize by id") + "\n")
	case v.searched:
		b.WriteString(styles.warn.Render(v.app.str.NoResults) + "\n")
	default:
		b.WriteString(styles.muted.Render(fmt.Sprintf(v.app.str.CounterLabel, v.counter.count)) + "\n")
		b.WriteString(styles.help.Render("/: search • i: summarize by id • +: count") + "\n")
	}

	return b.String()
}
