package main

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/vpwatch/internal/host"
	"github.com/alexisbeaulieu97/vpwatch/internal/responsive"
	"github.com/alexisbeaulieu97/vpwatch/internal/tui/inspector"
)

func newInspectCmd(root *rootFlags) *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Open an interactive viewport inspector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.breakpoint, "breakpoint", "b", "", "Initial breakpoint for the matcher (overrides watch.breakpoint)")
	cmd.Flags().StringVar(&opts.cellSize, "cell-size", "", "Pixels per terminal cell as WxH (overrides host cell size)")

	return cmd
}

func runInspect(cmd *cobra.Command, root *rootFlags, opts *watchOptions) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if err := opts.applyOverrides(cmd, cfg); err != nil {
		return err
	}

	// The inspector owns the screen; logs only go out with --verbose.
	logOut := io.Discard
	if root.verbose {
		logOut = cmd.ErrOrStderr()
	}
	log, err := root.newLogger(cfg, logOut)
	if err != nil {
		return err
	}

	h := host.NewTea(host.WithCellSize(cfg.CellSize()), host.WithLogger(log))
	model := inspector.NewModel(h, cfg.Watch.Target(), responsive.WithLogger(log))
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
