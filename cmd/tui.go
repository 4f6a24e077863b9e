package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/vidsum/internal/shared"
	"github.com/desertthunder/vidsum/internal/store"
	"github.com/desertthunder/vidsum/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal client.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if r.oracle == nil {
		return fmt.Errorf("%w: session oracle not initialized", shared.ErrServiceUnavailable)
	}
	if r.backend == nil {
		return fmt.Errorf("%w: backend not initialized", shared.ErrServiceUnavailable)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/vidsum-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	app := ui.NewApp(ctx, r.oracle, r.backend, store.NewSubscriptions(), fileLogger, r.config)
	model := ui.NewModel(app)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
