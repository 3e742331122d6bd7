package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"riddl/internal/compiler"
	"riddl/internal/diagfmt"
	"riddl/internal/pipeline"
	"riddl/internal/ui"
)

type validateOutcome struct {
	reports []diagfmt.FileReport
	err     error
}

func runValidateWithUI(ctx context.Context, title string, files []string, adapter *compiler.Adapter, opts pipeline.Options) ([]diagfmt.FileReport, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan validateOutcome, 1)

	go func() {
		opts.Progress = pipeline.ChannelSink{Ch: events}
		reports, err := pipeline.Run(ctx, adapter, files, opts)
		outcomeCh <- validateOutcome{reports: reports, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// the view may quit early; stop the workers and release blocked sends
	cancel()
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.reports, uiErr
	}
	return outcome.reports, outcome.err
}
