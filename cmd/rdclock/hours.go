package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/philipparndt/rdclock/pkg/clock"
	"github.com/philipparndt/rdclock/pkg/geometry"
	"github.com/spf13/cobra"
)

func newHoursCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hours",
		Short: "List the segments owned by every clock hour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "HOUR\tANGLE\tSEGMENTS")
			for h := clock.Hour(1); h <= clock.HourCount; h++ {
				r, _ := clock.HourToSegmentRange(h)
				fmt.Fprintf(w, "%d\t%.0f°\t%d-%d\n", h, geometry.HourToDegree(h), r.Start, r.End)
			}
			return w.Flush()
		},
	}
}
