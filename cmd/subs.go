package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/desertthunder/vidsum/internal/shared"
	"github.com/urfave/cli/v3"
)

// SubsList lists the user's channel subscriptions sorted by title.
func (r *Runner) SubsList(ctx context.Context, cmd *cli.Command) error {
	if !r.oracle.IsAuthenticated() {
		return fmt.Errorf("%w: sign in with 'vidsum auth login' first", shared.ErrNotAuthenticated)
	}

	subs, err := r.backend.Subscriptions(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	sort.Slice(subs, func(i, j int) bool {
		return subs[i].ChannelTitle < subs[j].ChannelTitle
	})

	if cmd.Bool("json") {
		return r.writeJSON(subs, true)
	}

	if len(subs) == 0 {
		r.writePlain("No subscriptions\n")
		return nil
	}

	r.writePlainHeader(fmt.Sprintf("%d subscriptions", len(subs)))
	for _, sub := range subs {
		r.writePlain("%s (%s)\n", sub.ChannelTitle, sub.ChannelID)
	}
	return nil
}

// SubsAdd subscribes to a channel and prints the server-confirmed entry.
func (r *Runner) SubsAdd(ctx context.Context, cmd *cli.Command) error {
	channelID := cmd.StringArg("channel")
	if channelID == "" {
		return fmt.Errorf("%w: channel ID", shared.ErrMissingArgument)
	}
	if !r.oracle.IsAuthenticated() {
		return fmt.Errorf("%w: sign in with 'vidsum auth login' first", shared.ErrNotAuthenticated)
	}

	r.logger.Info("subscribing", "channel", channelID)

	sub, err := r.backend.Subscribe(ctx, channelID)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlain("✓ Subscribed to %s (%s)\n", sub.ChannelTitle, sub.ChannelID)
	return nil
}

// SubsRemove unsubscribes from a channel.
func (r *Runner) SubsRemove(ctx context.Context, cmd *cli.Command) error {
	channelID := cmd.StringArg("channel")
	if channelID == "" {
		return fmt.Errorf("%w: channel ID", shared.ErrMissingArgument)
	}
	if !r.oracle.IsAuthenticated() {
		return fmt.Errorf("%w: sign in with 'vidsum auth login' first", shared.ErrNotAuthenticated)
	}

	r.logger.Info("unsubscribing", "channel", channelID)

	if err := r.backend.Unsubscribe(ctx, channelID); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlain("✓ Unsubscribed from %s\n", channelID)
	return nil
}
