package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/vpwatch/internal/config"
	"github.com/alexisbeaulieu97/vpwatch/internal/logger"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "vpwatch",
		Short:         "vpwatch classifies viewports and watches them change",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newClassifyCmd())
	cmd.AddCommand(newBreakpointsCmd())
	cmd.AddCommand(newWatchCmd(flags))
	cmd.AddCommand(newSimulateCmd(flags))
	cmd.AddCommand(newInspectCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig returns the file named by --config, or the defaults.
func (f *rootFlags) loadConfig() (*config.Config, error) {
	if f.configPath == "" {
		cfg := config.Default()
		return &cfg, nil
	}
	return config.Load(f.configPath)
}

// newLogger builds the zerolog logger described by cfg. --verbose forces
// the debug level.
func (f *rootFlags) newLogger(cfg *config.Config, w io.Writer) (*logger.Logger, error) {
	level := cfg.Log.Level
	if f.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, HumanReadable: cfg.Log.HumanReadable, Writer: w})
}
