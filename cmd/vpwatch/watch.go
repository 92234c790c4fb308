package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/vpwatch/internal/config"
	"github.com/alexisbeaulieu97/vpwatch/internal/host"
	"github.com/alexisbeaulieu97/vpwatch/internal/responsive"
	"github.com/alexisbeaulieu97/vpwatch/internal/watch"
)

type watchOptions struct {
	breakpoint string
	output     string
	debounce   time.Duration
	cellSize   string
}

func newWatchCmd(root *rootFlags) *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the terminal viewport and print every change",
		Long: "Watch binds the viewport observer, a breakpoint matcher and the mobile features to the\n" +
			"current terminal and prints a line per change until interrupted. With --config the file\n" +
			"is watched and a new watch.breakpoint retargets the matcher.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.breakpoint, "breakpoint", "b", "", "Breakpoint the matcher follows (overrides watch.breakpoint)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output format: text or json (overrides watch.output)")
	cmd.Flags().DurationVar(&opts.debounce, "debounce", 0, "Coalesce resize bursts (overrides watch.debounce)")
	cmd.Flags().StringVar(&opts.cellSize, "cell-size", "", "Pixels per terminal cell as WxH (overrides host cell size)")

	return cmd
}

// applyOverrides copies explicitly set flags over cfg.
func (o *watchOptions) applyOverrides(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("breakpoint") {
		if _, err := responsive.ParseBreakpoint(o.breakpoint); err != nil {
			return err
		}
		cfg.Watch.Breakpoint = o.breakpoint
	}
	if flags.Changed("output") {
		cfg.Watch.Output = o.output
	}
	if flags.Changed("debounce") {
		cfg.Watch.Debounce = o.debounce
	}
	if flags.Changed("cell-size") {
		cells, err := parseCellSize(o.cellSize)
		if err != nil {
			return err
		}
		cfg.Host.CellWidth = cells.Width
		cfg.Host.CellHeight = cells.Height
	}
	return nil
}

func runWatch(cmd *cobra.Command, root *rootFlags, opts *watchOptions) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if err := opts.applyOverrides(cmd, cfg); err != nil {
		return err
	}
	log, err := root.newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	runners := []watch.Runner{waitForCancel}

	var env host.Environment
	terminal, err := host.NewTerminal(os.Stdout, host.WithCellSize(cfg.CellSize()), host.WithLogger(log))
	if err != nil {
		log.With("error", err.Error()).Warn("terminal unavailable, falling back to an empty host")
		env = host.None()
	} else {
		env = terminal
		runners = append(runners, terminal.Run)
	}

	session, err := watch.NewSession(watch.Options{
		Env:        env,
		Breakpoint: cfg.Watch.Target(),
		Debounce:   cfg.Watch.Debounce,
		Output:     cfg.Watch.Output,
		Writer:     cmd.OutOrStdout(),
		Logger:     log,
	})
	if err != nil {
		return err
	}

	if root.configPath != "" {
		runners = append(runners, watch.WatchConfig(root.configPath, log, func(next *config.Config) {
			session.Retarget(next.Watch.Target())
		}))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return session.Run(ctx, runners...)
}

// waitForCancel keeps a session alive until ctx is done.
func waitForCancel(ctx context.Context) error {
	<-ctx.Done()
	return nil
}
