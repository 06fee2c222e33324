package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/rdclock/version"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rdclock",
		Short: "Retinal detachment clock-face calculator",
		Long: `rdclock maps retinal detachments and breaks drawn on a 12-hour clock face
to the hour ranges and categories used by the surgical-failure risk model.
Segments are numbered 0-59 clockwise from 12 o'clock, hours 1-12.`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newFormatCmd(),
		newCategorizeCmd(),
		newLocateCmd(),
		newHoursCmd(),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
