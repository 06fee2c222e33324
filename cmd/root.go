package cmd

import (
	"fmt"
	"os"

	"github.com/philipparndt/rdclock/internal/app"
	"github.com/philipparndt/rdclock/pkg/config"
	"github.com/philipparndt/rdclock/version"
	"github.com/spf13/cobra"
)

var opts app.Options

var rootCmd = &cobra.Command{
	Use:   "rdclock-window",
	Short: "Retinal detachment clock face",
	Long: `Interactive clock face for recording the extent of a retinal detachment
and the location of retinal breaks.`,
	Version: version.GetFullVersion(),
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(opts)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", config.DefaultPath(), "Settings file")
	rootCmd.Flags().BoolVarP(&opts.Debug, "debug", "d", false, "Enable debug logging")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
