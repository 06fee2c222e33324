package main

import (
	"fmt"

	"github.com/philipparndt/rdclock/pkg/analysis"
	"github.com/philipparndt/rdclock/pkg/clock"
	"github.com/philipparndt/rdclock/pkg/selection"
	"github.com/spf13/cobra"
)

func newCategorizeCmd() *cobra.Command {
	var segments, tears string

	cmd := &cobra.Command{
		Use:   "categorize",
		Short: "Compute the risk model categories for a selection",
		Long: `Derive the detachment extent and break location categories from painted
segments and tear hours, together with the display text for both.`,
		Example: "  rdclock categorize --segments 23-37 --tears 6\n  rdclock categorize --segments 0-59",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			detachment, err := clock.ParseSegments(segments)
			if err != nil {
				return fmt.Errorf("invalid --segments: %w", err)
			}
			tearHours, err := clock.ParseHours(tears)
			if err != nil {
				return fmt.Errorf("invalid --tears: %w", err)
			}

			result := analysis.Assess(selection.State{Detachment: detachment, Tears: tearHours})

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Clock-Face Assessment")
			fmt.Fprintln(out, "=====================")
			fmt.Fprintln(out, result.Summary())
			fmt.Fprintf(out, "Covered hours: %s\n", result.CoveredHours)
			fmt.Fprintf(out, "Segments: %d\n", result.SegmentCount)
			return nil
		},
	}

	cmd.Flags().StringVarP(&segments, "segments", "s", "", "Painted segments, e.g. 58-2,10")
	cmd.Flags().StringVarP(&tears, "tears", "t", "", "Tear hours, e.g. 11-1,6")
	return cmd
}
