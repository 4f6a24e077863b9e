package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/desertthunder/vidsum/internal/formatter"
	"github.com/desertthunder/vidsum/internal/models"
	"github.com/desertthunder/vidsum/internal/shared"
	"github.com/urfave/cli/v3"
)

// Search runs a one-shot video search and prints the result list.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	queryText := cmd.StringArg("query")
	if queryText == "" {
		return fmt.Errorf("%w: search query", shared.ErrMissingArgument)
	}
	if !r.oracle.IsAuthenticated() {
		return fmt.Errorf("%w: sign in with 'vidsum auth login' first", shared.ErrNotAuthenticated)
	}

	after, err := parseAfter(cmd.String("after"), time.Now())
	if err != nil {
		return err
	}

	query := models.SearchQuery{
		Query:          queryText,
		PublishedAfter: after,
		ChannelID:      cmd.String("channel"),
		MaxResults:     int(cmd.Int("max")),
	}
	if err := query.Validate(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidFlag, err)
	}

	r.logger.Info("searching", "query", queryText, "max", query.MaxResults)

	videos, err := r.backend.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(videos, true)
	}

	if len(videos) == 0 {
		r.writePlain("No results found\n")
		return nil
	}

	locale := r.config.UI.Locale
	r.writePlainHeader(fmt.Sprintf("%d results", len(videos)))
	for i, video := range videos {
		r.writePlain("%d. %s\n", i+1, formatter.TruncateTitle(video.Title, formatter.MaxTitleLength))
		r.writePlain("   %s • %s views • %s\n", video.ChannelTitle, formatter.FormatViewCount(video.ViewCount, locale), video.PublishedAt)
		r.writePlain("   id: %s\n", video.ID)
	}
	return nil
}

// parseAfter accepts a YYYY-MM-DD date or a bare day count back from now.
func parseAfter(value string, now time.Time) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if days, err := strconv.Atoi(value); err == nil && days > 0 {
		return now.AddDate(0, 0, -days), nil
	}
	return time.Time{}, fmt.Errorf("%w: --after must be YYYY-MM-DD or a day count, got %q", shared.ErrInvalidFlag, value)
}
