package main

import (
	"fmt"

	"github.com/philipparndt/rdclock/pkg/config"
	"github.com/philipparndt/rdclock/pkg/geometry"
	"github.com/spf13/cobra"
)

func newLocateCmd() *cobra.Command {
	var x, y float64
	var bounds geometry.Rect

	cmd := &cobra.Command{
		Use:   "locate",
		Short: "Map a pointer position to a clock angle, segment and hour",
		Long: `Resolve a pointer position against the bounding rectangle of a rendered
clock face, the same way mouse and touch input are resolved.`,
		Example: "  rdclock locate --x 300 --y 100 --width 400 --height 400",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if bounds.Degenerate() {
				fmt.Fprintln(out, "Degenerate bounds; everything maps to segment 0")
			}

			angle := geometry.PointerToAngle(x, y, bounds)
			segment := geometry.PointerToSegment(x, y, bounds)
			target := geometry.Locate(x, y, bounds, config.Default().Display.Layout())

			fmt.Fprintln(out, "Pointer Location")
			fmt.Fprintln(out, "================")
			fmt.Fprintf(out, "Pointer: (%.2f, %.2f)\n", x, y)
			fmt.Fprintf(out, "Bounds: left %.2f, top %.2f, %.2f x %.2f\n", bounds.Left, bounds.Top, bounds.Width, bounds.Height)
			fmt.Fprintf(out, "Angle: %.2f°\n", angle)
			fmt.Fprintf(out, "Segment: %d\n", segment)
			fmt.Fprintf(out, "Hour: %d\n", segment.Hour())
			fmt.Fprintf(out, "Radius: %.3f of face\n", geometry.PointerRadius(x, y, bounds))
			fmt.Fprintf(out, "Target: %s\n", target.Kind)
			return nil
		},
	}

	cmd.Flags().Float64Var(&x, "x", 0.0, "Pointer X coordinate")
	cmd.Flags().Float64Var(&y, "y", 0.0, "Pointer Y coordinate")
	cmd.Flags().Float64Var(&bounds.Width, "width", 0.0, "Width of the clock face rectangle")
	cmd.Flags().Float64Var(&bounds.Height, "height", 0.0, "Height of the clock face rectangle")
	cmd.Flags().Float64Var(&bounds.Left, "left", 0.0, "Left edge of the clock face rectangle")
	cmd.Flags().Float64Var(&bounds.Top, "top", 0.0, "Top edge of the clock face rectangle")

	for _, name := range []string{"x", "y", "width", "height"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
