package ui

import (
	"errors"
	"testing"

	"github.com/desertthunder/vidsum/internal/models"
	"github.com/desertthunder/vidsum/internal/session"
	"github.com/desertthunder/vidsum/internal/store"
	tu "github.com/desertthunder/vidsum/internal/testing"
	"github.com/stretchr/testify/assert"
)

func testApp(t *testing.T, authed bool) *App {
	t.Helper()
	var st session.Store
	if authed {
		st = &tu.MemoryStore{Session: persistedSession()}
	}
	oracle := session.NewOracle(nil, st, nil)
	return &App{
		oracle:  oracle,
		backend: &tu.MockBackend{},
		subs:    store.NewSubscriptions(),
		str:     localeStrings("en"),
		locale:  "en",
		theme:   "light",
	}
}

func TestHomeViewSearch(t *testing.T) {
	t.Run("empty query is a silent no-op", func(t *testing.T) {
		v := newHomeView(testApp(t, true)).(*homeView)
		v.input.SetValue("   ")

		cmd := v.submitSearch()
		assert.Nil(t, cmd)
		assert.Empty(t, v.errText)
		assert.False(t, v.loading)
	})

	t.Run("search without session shows inline error", func(t *testing.T) {
		v := newHomeView(testApp(t, false)).(*homeView)
		v.input.SetValue("golang talks")

		cmd := v.submitSearch()
		assert.Nil(t, cmd)
		assert.Equal(t, v.app.str.LoginRequired, v.errText)
	})

	t.Run("valid search enters loading and bumps generation", func(t *testing.T) {
		v := newHomeView(testApp(t, true)).(*homeView)
		v.input.SetValue("golang talks")

		cmd := v.submitSearch()
		assert.NotNil(t, cmd)
		assert.True(t, v.loading)
		assert.Equal(t, 1, v.gen)
	})

	t.Run("stale responses are dropped", func(t *testing.T) {
		v := newHomeView(testApp(t, true)).(*homeView)
		v.gen = 2
		v.loading = true

		v.handleResults(searchResultsMsg{gen: 1, videos: []models.VideoResult{{ID: "old"}}})
		assert.True(t, v.loading, "stale response must not clear loading state")
		assert.Nil(t, v.videos)

		v.handleResults(searchResultsMsg{gen: 2, videos: []models.VideoResult{{ID: "new", Title: "New"}}})
		assert.False(t, v.loading)
		assert.Len(t, v.videos, 1)
		assert.Equal(t, "new", v.videos[0].ID)
	})

	t.Run("failure clears results and shows the message", func(t *testing.T) {
		v := newHomeView(testApp(t, true)).(*homeView)
		v.gen = 1
		v.videos = []models.VideoResult{{ID: "stale"}}
		v.haveResults = true

		v.handleResults(searchResultsMsg{gen: 1, err: errors.New("API error: 500")})
		assert.Equal(t, "API error: 500", v.errText)
		assert.False(t, v.haveResults)
		assert.Nil(t, v.videos)
	})

	t.Run("success clears a prior error", func(t *testing.T) {
		v := newHomeView(testApp(t, true)).(*homeView)
		v.gen = 1
		v.errText = "API error: 500"

		v.handleResults(searchResultsMsg{gen: 1, videos: []models.VideoResult{{ID: "a", Title: "A"}}})
		assert.Empty(t, v.errText)
		assert.True(t, v.haveResults)
	})
}

func TestHomeViewSubscriptions(t *testing.T) {
	t.Run("confirmed subscribe adds server entry", func(t *testing.T) {
		v := newHomeView(testApp(t, true)).(*homeView)
		v.busyChannel = "UC1"

		v.handleSubToggled(subToggledMsg{
			channelID:  "UC1",
			subscribed: true,
			sub:        &models.Subscription{ChannelID: "UC1", ChannelTitle: "Chan"},
		})

		assert.Empty(t, v.busyChannel)
		assert.True(t, v.app.subs.Contains("UC1"))
	})

	t.Run("failed toggle leaves the set unchanged", func(t *testing.T) {
		v := newHomeView(testApp(t, true)).(*homeView)
		v.app.subs.Add(models.Subscription{ChannelID: "UC1", ChannelTitle: "Chan"})
		v.busyChannel = "UC1"

		v.handleSubToggled(subToggledMsg{channelID: "UC1", subscribed: false, err: errors.New("boom")})

		assert.Equal(t, "boom", v.errText)
		assert.True(t, v.app.subs.Contains("UC1"))
	})

	t.Run("unsubscribe removes entry", func(t *testing.T) {
		v := newHomeView(testApp(t, true)).(*homeView)
		v.app.subs.Add(models.Subscription{ChannelID: "UC1", ChannelTitle: "Chan"})
		v.busyChannel = "UC1"

		v.handleSubToggled(subToggledMsg{channelID: "UC1", subscribed: false})
		assert.False(t, v.app.subs.Contains("UC1"))
	})

	t.Run("filter cycles through all channels", func(t *testing.T) {
		v := newHomeView(testApp(t, true)).(*homeView)
		v.app.subs.Add(models.Subscription{ChannelID: "UC2", ChannelTitle: "Beta"})
		v.app.subs.Add(models.Subscription{ChannelID: "UC1", ChannelTitle: "Alpha"})

		assert.Equal(t, "", v.selectedChannelID())
		v.cycleFilter()
		assert.Equal(t, "UC1", v.selectedChannelID(), "first filter entry follows title order")
		v.cycleFilter()
		assert.Equal(t, "UC2", v.selectedChannelID())
		v.cycleFilter()
		assert.Equal(t, "", v.selectedChannelID())
	})
}

func TestSummaryPane(t *testing.T) {
	t.Run("invalid input never reaches the network", func(t *testing.T) {
		p := newSummaryPane(testApp(t, true))
		cmd, err := p.startFromInput("not a video")
		assert.Error(t, err)
		assert.Nil(t, cmd)
	})

	t.Run("url input resolves", func(t *testing.T) {
		p := newSummaryPane(testApp(t, true))
		cmd, err := p.startFromInput("https://youtu.be/dQw4w9WgXcQ")
		assert.NoError(t, err)
		assert.NotNil(t, cmd)
		assert.Equal(t, "dQw4w9WgXcQ", p.videoID)
	})

	t.Run("without session shows login required", func(t *testing.T) {
		p := newSummaryPane(testApp(t, false))
		cmd := p.start("dQw4w9WgXcQ")
		assert.Nil(t, cmd)
		assert.Equal(t, p.app.str.LoginRequired, p.errText)
	})

	t.Run("stale result dropped", func(t *testing.T) {
		p := newSummaryPane(testApp(t, true))
		p.gen = 2
		p.loading = true

		p.handleResult(summaryResultMsg{gen: 1, summary: &models.Summary{BriefSummary: "old"}})
		assert.True(t, p.loading)
		assert.Nil(t, p.summary)
	})

	t.Run("failure hides the prior summary", func(t *testing.T) {
		p := newSummaryPane(testApp(t, true))
		p.gen = 1
		p.summary = &models.Summary{BriefSummary: "old"}

		p.handleResult(summaryResultMsg{gen: 1, err: errors.New("API error: 502")})
		assert.Nil(t, p.summary)
		assert.Equal(t, "API error: 502", p.errText)
	})

	t.Run("toggle is a no-op without a summary", func(t *testing.T) {
		p := newSummaryPane(testApp(t, true))
		p.toggleView()
		assert.False(t, p.showMarkdown)
	})
}

func TestMarkdownPreview(t *testing.T) {
	t.Run("copy and export are no-ops without content", func(t *testing.T) {
		p := newMarkdownPreview("light")
		str := localeStrings("en")

		msg := p.Copy(str)()
		note, ok := msg.(noteMsg)
		assert.True(t, ok)
		assert.Equal(t, str.NothingToCopy, note.text)

		msg = p.Export(str)()
		note, ok = msg.(noteMsg)
		assert.True(t, ok)
		assert.Equal(t, str.NothingToCopy, note.text)
	})

	t.Run("theme toggles between light and dark", func(t *testing.T) {
		p := newMarkdownPreview("light")
		p.ToggleTheme()
		assert.Equal(t, "dark", p.theme)
		p.ToggleTheme()
		assert.Equal(t, "light", p.theme)
	})

	t.Run("unknown theme defaults to light", func(t *testing.T) {
		p := newMarkdownPreview("solarized")
		assert.Equal(t, "light", p.theme)
	})
}
