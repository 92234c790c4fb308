package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/vpwatch/internal/responsive"
)

type classifyOptions struct {
	output string
}

// classification is the machine-readable result of classify.
type classification struct {
	responsive.ResponsiveState `yaml:",inline"`
	Class                      string                 `json:"class" yaml:"class"`
	Orientation                responsive.Orientation `json:"orientation" yaml:"orientation"`
}

func newClassifyCmd() *cobra.Command {
	opts := &classifyOptions{}

	cmd := &cobra.Command{
		Use:   "classify WIDTH HEIGHT",
		Short: "Classify a viewport size",
		Long:  "Classify prints the breakpoint, device class and orientation of a viewport given in pixels.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := parseDimension("width", args[0])
			if err != nil {
				return err
			}
			height, err := parseDimension("height", args[1])
			if err != nil {
				return err
			}
			return runClassify(cmd, opts, width, height)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Output format: text, json or yaml")

	return cmd
}

func runClassify(cmd *cobra.Command, opts *classifyOptions, width, height int) error {
	state := responsive.Classify(width, height)
	result := classification{
		ResponsiveState: state,
		Class:           state.DeviceClass().String(),
		Orientation:     responsive.OrientationOf(width, height),
	}

	out := cmd.OutOrStdout()
	switch opts.output {
	case "text":
		_, err := fmt.Fprintf(out, "breakpoint=%s class=%s orientation=%s size=%dx%d\n",
			result.Breakpoint, result.Class, result.Orientation, result.Width, result.Height)
		return err
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case "yaml":
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(result); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported output format %q (want text, json or yaml)", opts.output)
	}
}
