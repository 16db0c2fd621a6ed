package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/propdeck/internal/catalog"
	"github.com/alexisbeaulieu97/propdeck/internal/tui"
)

func newTUICmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive playground",
		Long: `Launch the interactive playground. When --catalog points at a file, edits to
that file are picked up live.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, flags)
		},
	}
}

func runTUI(cmd *cobra.Command, flags *rootFlags) error {
	// The terminal belongs to the UI, so only --log-file receives logs here.
	tuiFlags := *flags
	tuiFlags.verbose = flags.verbose && flags.logFile != ""

	a, err := newApp(cmd, &tuiFlags, "tui")
	if err != nil {
		return err
	}
	defer a.Close()

	p := tea.NewProgram(tui.NewModel(a.store(), a.log), tea.WithAltScreen())

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if flags.catalogPath != "" {
		watcher, err := catalog.NewWatcher(flags.catalogPath, a.log)
		if err != nil {
			return newCommandError("tui", "watching catalog", err, "Check that the catalog directory is readable.")
		}
		go watcher.Run(ctx, func(c *catalog.Catalog, err error) {
			p.Send(tui.CatalogReloadedMsg{Catalog: c, Err: err})
		})
	}

	a.log.Info("playground started")
	if _, err := p.Run(); err != nil {
		a.log.Error(err, "playground failed")
		return fmt.Errorf("failed to run playground: %w", err)
	}
	a.log.Info("playground closed")
	return nil
}
