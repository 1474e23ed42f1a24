// Package cmd implements the sigviz command tree.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sigviz",
	Short: "Signal synthesis, filtering, and spectrum export",
	Long: `sigviz runs the signal-visualiser pipeline: it synthesizes a waveform,
optionally adds noise, applies a Butterworth filter, and exports the
time-domain traces and magnitude spectra for plotting.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
