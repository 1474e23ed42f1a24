package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/RupanjanSaha123/Realtimesignalvisualiser/dsp/pipeline"
)

// exportCSV writes the time-domain traces and spectra as two CSV tables.
// With a prefix they go to <prefix>_time.csv and <prefix>_spectrum.csv;
// without one, both tables are written to stdout in sequence.
func exportCSV(result pipeline.Result, prefix string) error {
	if prefix == "" {
		if err := writeTimeCSV(os.Stdout, result); err != nil {
			return err
		}
		return writeSpectrumCSV(os.Stdout, result)
	}

	if err := writeFileCSV(prefix+"_time.csv", result, writeTimeCSV); err != nil {
		return err
	}
	return writeFileCSV(prefix+"_spectrum.csv", result, writeSpectrumCSV)
}

func writeFileCSV(path string, result pipeline.Result, write func(io.Writer, pipeline.Result) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer f.Close()

	if err := write(f, result); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return f.Close()
}

func writeTimeCSV(w io.Writer, result pipeline.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time_s", "original", "filtered"}); err != nil {
		return err
	}
	for i, t := range result.Original.Time {
		row := []string{
			formatFloat(t),
			formatFloat(result.Original.Values[i]),
			formatFloat(result.Filtered.Values[i]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeSpectrumCSV(w io.Writer, result pipeline.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"frequency_hz", "original_mag", "filtered_mag"}); err != nil {
		return err
	}
	for i, f := range result.OriginalSpectrum.Freqs {
		row := []string{
			formatFloat(f),
			formatFloat(result.OriginalSpectrum.Mags[i]),
			formatFloat(result.FilteredSpectrum.Mags[i]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// exportJSON writes the whole result as one JSON document, to
// <prefix>.json or stdout.
func exportJSON(result pipeline.Result, prefix string) error {
	w := io.Writer(os.Stdout)
	if prefix != "" {
		f, err := os.Create(prefix + ".json")
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("export json: %w", err)
	}
	return nil
}

func printSummary(w io.Writer, result pipeline.Result) {
	origFreq, origMag := result.OriginalSpectrum.Peak()
	filtFreq, filtMag := result.FilteredSpectrum.Peak()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Signal\tSamples\tPeak [Hz]\tPeak magnitude\n")
	fmt.Fprintf(tw, "original\t%d\t%.2f\t%.2f\n", result.Original.Len(), origFreq, origMag)
	fmt.Fprintf(tw, "filtered\t%d\t%.2f\t%.2f\n", result.Filtered.Len(), filtFreq, filtMag)
	_ = tw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
