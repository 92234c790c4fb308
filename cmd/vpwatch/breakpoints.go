package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/vpwatch/internal/responsive"
)

func newBreakpointsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "breakpoints",
		Short: "List the breakpoint table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "NAME\tMIN WIDTH\tCLASS")
			for _, th := range responsive.Breakpoints() {
				fmt.Fprintf(writer, "%s\t%d\t%s\n", th.Breakpoint, th.MinWidth, th.Breakpoint.DeviceClass())
			}
			return writer.Flush()
		},
	}
}
