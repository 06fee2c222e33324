package main

import (
	"fmt"

	"github.com/philipparndt/rdclock/pkg/clock"
	"github.com/philipparndt/rdclock/pkg/hours"
	"github.com/spf13/cobra"
)

func newFormatCmd() *cobra.Command {
	var segments string
	var showImplied bool

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Format painted segments as clock-hour ranges",
		Long: `Convert a set of painted segments to the hour-range text shown to the clinician.
Segments are given as a comma separated list; a range a-b is walked clockwise,
so 58-2 covers 58, 59, 0, 1 and 2.`,
		Example: "  rdclock format --segments 58-7\n  rdclock format --segments 23-27,33-37",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := clock.ParseSegments(segments)
			if err != nil {
				return fmt.Errorf("invalid --segments: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, hours.FormatDetachment(set))
			if showImplied {
				touched := hours.Touched(set)
				fmt.Fprintf(out, "Touched hours: %s\n", touched)
				fmt.Fprintf(out, "Implied hours: %s\n", hours.Implied(touched).Without(touched))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&segments, "segments", "s", "", "Painted segments, e.g. 58-2,10")
	cmd.Flags().BoolVar(&showImplied, "explain", false, "Also list touched and implied hours")
	return cmd
}
