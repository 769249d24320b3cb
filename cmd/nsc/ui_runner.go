package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nullscript-lang/nullscript/internal/keywords"
	"github.com/nullscript-lang/nullscript/internal/toolchain"
	"github.com/nullscript-lang/nullscript/internal/ui"
)

type buildOutcome struct {
	result *toolchain.Result
	err    error
}

// runBuildWithUI runs a build behind the Bubble Tea progress view, feeding
// it pipeline events over a channel.
func runBuildWithUI(ctx context.Context, title string, files []string, table *keywords.Table, opts toolchain.Options, srcDir, outDir string) (*toolchain.Result, error) {
	events := make(chan toolchain.Event, 256)
	outcomeCh := make(chan buildOutcome, 1)

	go func() {
		opts.Progress = toolchain.ChannelSink{Ch: events}
		p := toolchain.NewPipeline(table, opts)
		res, err := p.Build(ctx, srcDir, outDir)
		outcomeCh <- buildOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
