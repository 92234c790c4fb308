package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/vpwatch/internal/host"
	"github.com/alexisbeaulieu97/vpwatch/internal/watch"
)

type simulateOptions struct {
	watch        watchOptions
	noBoundary   bool
	noStandalone bool
	standalone   bool
}

// step is one action of a simulation script.
type step func(sim *host.Simulated)

func newSimulateCmd(root *rootFlags) *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate SIZE [STEP...]",
		Short: "Replay a scripted sequence of viewport changes",
		Long: "Simulate starts a watch session on an in-memory host sized by the first argument\n" +
			"(WIDTHxHEIGHT in pixels) and applies each following step in order. A step is\n" +
			"another size, \"rotate\", \"standalone\" or \"browser\".",
		Example: "  vpwatch simulate 375x812 rotate 1280x800 standalone",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initial, err := parseSize(args[0])
			if err != nil {
				return err
			}
			steps, err := parseScript(args[1:])
			if err != nil {
				return err
			}
			return runSimulate(cmd, root, opts, initial, steps)
		},
	}

	cmd.Flags().StringVarP(&opts.watch.breakpoint, "breakpoint", "b", "", "Breakpoint the matcher follows (overrides watch.breakpoint)")
	cmd.Flags().StringVarP(&opts.watch.output, "output", "o", "", "Output format: text or json (overrides watch.output)")
	cmd.Flags().BoolVar(&opts.standalone, "standalone", false, "Start in standalone display mode")
	cmd.Flags().BoolVar(&opts.noBoundary, "no-boundary-watch", false, "Simulate a host without min-width watches")
	cmd.Flags().BoolVar(&opts.noStandalone, "no-standalone-query", false, "Simulate a host that cannot report its display mode")

	return cmd
}

func parseScript(args []string) ([]step, error) {
	steps := make([]step, 0, len(args))
	for _, arg := range args {
		switch strings.ToLower(arg) {
		case "rotate":
			steps = append(steps, func(sim *host.Simulated) { sim.Rotate() })
		case "standalone":
			steps = append(steps, func(sim *host.Simulated) { sim.SetStandalone(true) })
		case "browser":
			steps = append(steps, func(sim *host.Simulated) { sim.SetStandalone(false) })
		default:
			size, err := parseSize(arg)
			if err != nil {
				return nil, fmt.Errorf("invalid step %q: want a size, rotate, standalone or browser", arg)
			}
			steps = append(steps, func(sim *host.Simulated) { sim.Resize(size.Width, size.Height) })
		}
	}
	return steps, nil
}

func runSimulate(cmd *cobra.Command, root *rootFlags, opts *simulateOptions, initial host.Size, steps []step) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if err := opts.watch.applyOverrides(cmd, cfg); err != nil {
		return err
	}
	log, err := root.newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	simOpts := []host.SimulatedOption{host.WithStandalone(opts.standalone)}
	if opts.noBoundary {
		simOpts = append(simOpts, host.WithoutBoundaryWatch())
	}
	if opts.noStandalone {
		simOpts = append(simOpts, host.WithoutStandaloneQuery())
	}
	sim := host.NewSimulated(initial, simOpts...)

	// Steps are applied synchronously, so debouncing would only drop them.
	session, err := watch.NewSession(watch.Options{
		Env:        sim,
		Breakpoint: cfg.Watch.Target(),
		Output:     cfg.Watch.Output,
		Writer:     cmd.OutOrStdout(),
		Logger:     log,
	})
	if err != nil {
		return err
	}

	return session.Run(cmd.Context(), func(ctx context.Context) error {
		for _, apply := range steps {
			if err := ctx.Err(); err != nil {
				return err
			}
			apply(sim)
		}
		return nil
	})
}
