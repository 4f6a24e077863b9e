package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/desertthunder/vidsum/internal/formatter"
	"github.com/desertthunder/vidsum/internal/services"
	"github.com/desertthunder/vidsum/internal/shared"
	"github.com/desertthunder/vidsum/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Summarize generates an AI summary for a single video ID or URL.
func (r *Runner) Summarize(ctx context.Context, cmd *cli.Command) error {
	input := cmd.StringArg("video")
	if input == "" {
		return fmt.Errorf("%w: video ID or URL", shared.ErrMissingArgument)
	}
	if !r.oracle.IsAuthenticated() {
		return fmt.Errorf("%w: sign in with 'vidsum auth login' first", shared.ErrNotAuthenticated)
	}

	videoID, err := formatter.ExtractVideoID(input)
	if err != nil {
		return err
	}

	formatType := services.FormatJSON
	if cmd.Bool("markdown") {
		formatType = services.FormatMarkdown
	}

	r.logger.Info("summarizing", "video", videoID, "format", formatType)
	r.writePlain("Generating summary for %s...\n", videoID)

	summary, err := r.backend.Summarize(ctx, videoID, formatType)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if exportPath := cmd.String("export"); exportPath != "" {
		var written string
		if strings.HasSuffix(exportPath, ".html") {
			written, err = formatter.WriteHTMLExport(summary, exportPath)
		} else {
			written, err = formatter.WriteMarkdownExport(summary, exportPath)
		}
		if err != nil {
			return err
		}
		r.writePlain("✓ Summary written to %s\n", written)
		return nil
	}

	if cmd.Bool("json") {
		return r.writeJSON(summary, true)
	}

	markdown := formatter.SummaryToMarkdown(summary)
	rendered, err := glamour.Render(markdown, r.theme())
	if err != nil {
		rendered = markdown
	}
	return r.writePlain("%s\n", rendered)
}

// SummarizeBulk summarizes many videos concurrently from an ID list file.
func (r *Runner) SummarizeBulk(ctx context.Context, cmd *cli.Command) error {
	if !r.oracle.IsAuthenticated() {
		return fmt.Errorf("%w: sign in with 'vidsum auth login' first", shared.ErrNotAuthenticated)
	}

	inputs, err := readVideoList(cmd.String("file"))
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("%w: no video IDs in file", shared.ErrInvalidInput)
	}

	r.logger.Info("bulk summarize", "videos", len(inputs))

	progressCh := make(chan tasks.ProgressUpdate, 50)
	go func() {
		for update := range progressCh {
			switch update.Phase {
			case tasks.ResolveVideos:
				r.writePlain("📥 %s\n", update.Message)
			case tasks.Summarize:
				r.writePlain("   %s\n", update.Message)
			case tasks.WriteManifest:
				r.writePlain("\n📝 %s\n", update.Message)
			}
		}
	}()

	result, err := r.engine.BulkSummarize(ctx, progressCh, inputs, tasks.BulkSummarizeOpts{
		Format:     cmd.String("format"),
		OutputDir:  cmd.String("output"),
		NumWorkers: int(cmd.Int("workers")),
		RateLimit:  float64(cmd.Float("rate")),
	})
	close(progressCh)

	if err != nil {
		return err
	}

	r.writePlainln("")
	r.writePlainHeader("Bulk Summarize Complete!")
	r.writePlain("Summarized: %d/%d videos\n", result.SuccessfulReports, result.TotalVideos)
	r.writePlain("Output: %s\n", result.OutputDirectory)
	r.writePlain("Manifest: %s\n", result.ManifestPath)

	if result.FailedReports > 0 {
		r.writePlain("\nFailed videos:\n")
		for _, res := range result.Results {
			if !res.Success {
				r.writePlain("  - %s: %v\n", res.VideoID, res.Error)
			}
		}
	}

	return nil
}

// readVideoList reads one video ID or URL per line, skipping blanks and comments.
func readVideoList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	var inputs []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, line)
	}
	return inputs, nil
}

// theme maps the configured UI theme onto a glamour style name.
func (r *Runner) theme() string {
	if r.config.UI.Theme == "dark" {
		return "dark"
	}
	return "light"
}
