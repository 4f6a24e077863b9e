package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/vidsum/internal/models"
	"github.com/desertthunder/vidsum/internal/services"
	"github.com/desertthunder/vidsum/internal/session"
	"github.com/desertthunder/vidsum/internal/shared"
	tu "github.com/desertthunder/vidsum/internal/testing"
	"github.com/urfave/cli/v3"
)

func testSession() *models.Session {
	return &models.Session{
		ID:           "session-1",
		UID:          "uid-1",
		Email:        "user@example.com",
		IDToken:      "id-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    time.Now().Add(time.Hour),
	}
}

// newTestRunner builds a Runner backed by the mock backend, with an
// authenticated oracle when authed is true.
func newTestRunner(authed bool, backend *tu.MockBackend) (*Runner, *bytes.Buffer) {
	store := &tu.MemoryStore{}
	if authed {
		store.Session = testSession()
	}

	output := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{
		Oracle:  session.NewOracle(nil, store, shared.NewLogger(nil)),
		Backend: backend,
		Logger:  shared.NewLogger(nil),
		Output:  output,
	})
	return runner, output
}

func run(t *testing.T, runner *Runner, args ...string) error {
	t.Helper()
	app := &cli.Command{Name: "vidsum", Commands: runner.register()}
	return app.Run(context.Background(), append([]string{"vidsum"}, args...))
}

func TestSearchCommand(t *testing.T) {
	videos := []models.VideoResult{
		{ID: "dQw4w9WgXcQ", Title: "First video", ChannelTitle: "Channel A", ViewCount: "2300000", PublishedAt: "2026-08-01"},
		{ID: "jNQXAC9IVRw", Title: "Second video", ChannelTitle: "Channel B", ViewCount: "950", PublishedAt: "2026-08-02"},
	}

	t.Run("prints formatted results", func(t *testing.T) {
		var got models.SearchQuery
		backend := &tu.MockBackend{
			SearchFn: func(ctx context.Context, query models.SearchQuery) ([]models.VideoResult, error) {
				got = query
				return videos, nil
			},
		}
		runner, output := newTestRunner(true, backend)

		if err := run(t, runner, "search", "--after", "30", "--max", "10", "golang"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if got.Query != "golang" {
			t.Errorf("expected query to be passed through, got %q", got.Query)
		}
		if got.MaxResults != 10 {
			t.Errorf("expected max results 10, got %d", got.MaxResults)
		}
		if got.PublishedAfter.IsZero() {
			t.Error("expected published-after to be set")
		}

		result := output.String()
		if !strings.Contains(result, "2 results") {
			t.Errorf("expected result count, got %s", result)
		}
		if !strings.Contains(result, "2.3M views") {
			t.Errorf("expected abbreviated view count, got %s", result)
		}
		if !strings.Contains(result, "950 views") {
			t.Errorf("expected raw sub-thousand count, got %s", result)
		}
	})

	t.Run("prints no results message for empty list", func(t *testing.T) {
		backend := &tu.MockBackend{
			SearchFn: func(ctx context.Context, query models.SearchQuery) ([]models.VideoResult, error) {
				return nil, nil
			},
		}
		runner, output := newTestRunner(true, backend)

		if err := run(t, runner, "search", "golang"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), "No results") {
			t.Errorf("expected no-results message, got %s", output.String())
		}
	})

	t.Run("requires a session", func(t *testing.T) {
		runner, _ := newTestRunner(false, &tu.MockBackend{})

		err := run(t, runner, "search", "golang")
		if !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("rejects a max outside the enumerated set", func(t *testing.T) {
		runner, _ := newTestRunner(true, &tu.MockBackend{})

		err := run(t, runner, "search", "--max", "7", "golang")
		if !errors.Is(err, shared.ErrInvalidFlag) {
			t.Errorf("expected ErrInvalidFlag, got %v", err)
		}
	})

	t.Run("requires a query argument", func(t *testing.T) {
		runner, _ := newTestRunner(true, &tu.MockBackend{})

		err := run(t, runner, "search")
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})
}

func TestSummarizeCommand(t *testing.T) {
	summary := &models.Summary{
		BriefSummary: "A short brief.",
		KeyPoints:    []string{"point one"},
		MainTopics:   []string{"topic"},
	}

	t.Run("resolves a watch URL before calling the backend", func(t *testing.T) {
		var gotID string
		backend := &tu.MockBackend{
			SummarizeFn: func(ctx context.Context, videoID, formatType string) (*models.Summary, error) {
				gotID = videoID
				return summary, nil
			},
		}
		runner, _ := newTestRunner(true, backend)

		if err := run(t, runner, "summarize", "--json", "https://www.youtube.com/watch?v=dQw4w9WgXcQ"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if gotID != "dQw4w9WgXcQ" {
			t.Errorf("expected extracted video ID, got %q", gotID)
		}
	})

	t.Run("requests the markdown representation", func(t *testing.T) {
		var gotFormat string
		backend := &tu.MockBackend{
			SummarizeFn: func(ctx context.Context, videoID, formatType string) (*models.Summary, error) {
				gotFormat = formatType
				return summary, nil
			},
		}
		runner, _ := newTestRunner(true, backend)

		if err := run(t, runner, "summarize", "--markdown", "--json", "dQw4w9WgXcQ"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if gotFormat != "markdown" {
			t.Errorf("expected markdown format, got %q", gotFormat)
		}
	})

	t.Run("exports to a markdown file", func(t *testing.T) {
		backend := &tu.MockBackend{
			SummarizeFn: func(ctx context.Context, videoID, formatType string) (*models.Summary, error) {
				return summary, nil
			},
		}
		runner, output := newTestRunner(true, backend)
		path := filepath.Join(t.TempDir(), "summary.md")

		if err := run(t, runner, "summarize", "--export", path, "dQw4w9WgXcQ"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("expected export file, got %v", err)
		}
		if !strings.Contains(string(data), "A short brief.") {
			t.Errorf("expected summary content in export, got %s", data)
		}
		if !strings.Contains(output.String(), path) {
			t.Errorf("expected written path in output, got %s", output.String())
		}
	})

	t.Run("rejects an invalid video reference locally", func(t *testing.T) {
		called := false
		backend := &tu.MockBackend{
			SummarizeFn: func(ctx context.Context, videoID, formatType string) (*models.Summary, error) {
				called = true
				return summary, nil
			},
		}
		runner, _ := newTestRunner(true, backend)

		err := run(t, runner, "summarize", "not a video")
		if !errors.Is(err, shared.ErrInvalidVideoID) {
			t.Errorf("expected ErrInvalidVideoID, got %v", err)
		}
		if called {
			t.Error("expected no backend call for invalid input")
		}
	})

	t.Run("requires a session", func(t *testing.T) {
		runner, _ := newTestRunner(false, &tu.MockBackend{})

		err := run(t, runner, "summarize", "dQw4w9WgXcQ")
		if !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("bulk summarizes an ID list file", func(t *testing.T) {
		backend := &tu.MockBackend{
			SummarizeFn: func(ctx context.Context, videoID, formatType string) (*models.Summary, error) {
				return summary, nil
			},
		}
		runner, output := newTestRunner(true, backend)

		dir := t.TempDir()
		listPath := filepath.Join(dir, "videos.txt")
		list := "dQw4w9WgXcQ\n# a comment\n\njNQXAC9IVRw\n"
		if err := os.WriteFile(listPath, []byte(list), 0644); err != nil {
			t.Fatal(err)
		}

		outDir := filepath.Join(dir, "out")
		err := run(t, runner, "summarize", "bulk", "--file", listPath, "--output", outDir, "--rate", "100")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !strings.Contains(output.String(), "Summarized: 2/2") {
			t.Errorf("expected success summary, got %s", output.String())
		}
		tu.AssertFileExists(t, filepath.Join(outDir, "summary_manifest.json"))
	})
}

func TestSubsCommands(t *testing.T) {
	t.Run("list sorts by channel title", func(t *testing.T) {
		backend := &tu.MockBackend{
			SubscriptionsFn: func(ctx context.Context) ([]models.Subscription, error) {
				return []models.Subscription{
					{ChannelID: "UC2", ChannelTitle: "Zed"},
					{ChannelID: "UC1", ChannelTitle: "Alpha"},
				}, nil
			},
		}
		runner, output := newTestRunner(true, backend)

		if err := run(t, runner, "subs", "list"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		result := output.String()
		if strings.Index(result, "Alpha") > strings.Index(result, "Zed") {
			t.Errorf("expected titles sorted lexicographically, got %s", result)
		}
	})

	t.Run("add prints the server-confirmed title", func(t *testing.T) {
		backend := &tu.MockBackend{
			SubscribeFn: func(ctx context.Context, channelID string) (*models.Subscription, error) {
				return &models.Subscription{ChannelID: channelID, ChannelTitle: "Resolved Title"}, nil
			},
		}
		runner, output := newTestRunner(true, backend)

		if err := run(t, runner, "subs", "add", "UC123"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), "Resolved Title") {
			t.Errorf("expected confirmed title, got %s", output.String())
		}
	})

	t.Run("remove surfaces backend failures", func(t *testing.T) {
		backend := &tu.MockBackend{
			UnsubscribeFn: func(ctx context.Context, channelID string) error {
				return errors.New("channel not found")
			},
		}
		runner, _ := newTestRunner(true, backend)

		err := run(t, runner, "subs", "remove", "UC123")
		if !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
	})

	t.Run("operations require a session", func(t *testing.T) {
		runner, _ := newTestRunner(false, &tu.MockBackend{})

		for _, args := range [][]string{
			{"subs", "list"},
			{"subs", "add", "UC123"},
			{"subs", "remove", "UC123"},
		} {
			if err := run(t, runner, args...); !errors.Is(err, shared.ErrNotAuthenticated) {
				t.Errorf("expected ErrNotAuthenticated for %v, got %v", args, err)
			}
		}
	})
}

func TestAuthCommands(t *testing.T) {
	t.Run("whoami prints the restored user", func(t *testing.T) {
		runner, output := newTestRunner(true, &tu.MockBackend{})

		if err := run(t, runner, "auth", "whoami"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), "user@example.com") {
			t.Errorf("expected email in output, got %s", output.String())
		}
	})

	t.Run("whoami fails without a session", func(t *testing.T) {
		runner, _ := newTestRunner(false, &tu.MockBackend{})

		err := run(t, runner, "auth", "whoami")
		if !errors.Is(err, shared.ErrNoActiveSession) {
			t.Errorf("expected ErrNoActiveSession, got %v", err)
		}
	})

	t.Run("register rejects mismatched passwords locally", func(t *testing.T) {
		runner, _ := newTestRunner(false, &tu.MockBackend{})

		err := run(t, runner, "auth", "register", "--email", "a@b.com", "--password", "secret1", "--confirm", "secret2")
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("register rejects short passwords locally", func(t *testing.T) {
		runner, _ := newTestRunner(false, &tu.MockBackend{})

		err := run(t, runner, "auth", "register", "--email", "a@b.com", "--password", "abc", "--confirm", "abc")
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("logout fails without a session", func(t *testing.T) {
		runner, _ := newTestRunner(false, &tu.MockBackend{})

		err := run(t, runner, "auth", "logout")
		if !errors.Is(err, shared.ErrNoActiveSession) {
			t.Errorf("expected ErrNoActiveSession, got %v", err)
		}
	})

	t.Run("verify prints the decoded claims", func(t *testing.T) {
		backend := &tu.MockBackend{
			VerifyAuthFn: func(ctx context.Context) (*services.AuthClaims, error) {
				return &services.AuthClaims{UID: "uid-1", Email: "user@example.com", EmailVerified: true, AuthTime: time.Now().Unix()}, nil
			},
		}
		runner, output := newTestRunner(true, backend)

		if err := run(t, runner, "auth", "verify"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), "uid-1") {
			t.Errorf("expected UID in output, got %s", output.String())
		}
	})
}
