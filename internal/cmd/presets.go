package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/RupanjanSaha123/Realtimesignalvisualiser/internal/preset"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		if _, err := fmt.Fprintln(tw, "Name\tWaveform\tFreq [Hz]\tAmp\tNoise\tFilter\tCutoff [Hz]"); err != nil {
			return err
		}
		for _, b := range preset.Builtin {
			p := b.Preset
			if _, err := fmt.Fprintf(tw, "%s\t%s\t%.1f\t%.2f\t%.2f\t%s\t%.1f\n",
				b.Name, p.Waveform, p.FrequencyHz, p.Amplitude, p.NoiseLevel, p.Filter, p.CutoffHz); err != nil {
				return err
			}
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
