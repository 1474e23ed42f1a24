package spectrum

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/RupanjanSaha123/Realtimesignalvisualiser/dsp/core"
)

// Spectrum is the magnitude spectrum of one sampled window: frequency
// bins ascending from 0 to Nyquist, one magnitude per bin.
type Spectrum struct {
	Freqs []float64
	Mags  []float64
}

// Len returns the bin count.
func (s Spectrum) Len() int { return len(s.Mags) }

// BinWidth returns the frequency spacing between adjacent bins in Hz,
// or 0 for a degenerate spectrum.
func (s Spectrum) BinWidth() float64 {
	if len(s.Freqs) < 2 {
		return 0
	}
	return s.Freqs[1] - s.Freqs[0]
}

// Peak returns the frequency and magnitude of the dominant bin.
func (s Spectrum) Peak() (freqHz, mag float64) {
	for i, m := range s.Mags {
		if m > mag {
			mag = m
			freqHz = s.Freqs[i]
		}
	}
	return freqHz, mag
}

// Analyzer computes magnitude spectra of full sample windows at a fixed
// sample rate.
type Analyzer struct {
	cfg core.ProcessorConfig
}

// NewAnalyzer creates a spectral analyzer.
func NewAnalyzer(opts ...core.ProcessorOption) *Analyzer {
	return &Analyzer{cfg: core.ApplyProcessorOptions(opts...)}
}

// Config returns the analyzer processor configuration.
func (a *Analyzer) Config() core.ProcessorConfig {
	return a.cfg
}

// Analyze computes the magnitude spectrum of the whole signal.
//
// The FFT runs at the window length itself (plans handle arbitrary sizes
// via mixed-radix decomposition), so bins map to frequency exactly as
// k*sampleRate/N. The result keeps bins 0..N/2 inclusive. Deterministic
// and pure: the input is not modified and identical inputs yield
// identical spectra.
func (a *Analyzer) Analyze(signal []float64) (Spectrum, error) {
	if len(signal) == 0 {
		return Spectrum{}, fmt.Errorf("analyze: signal must not be empty: %w", core.ErrInvalidParameter)
	}
	if a.cfg.SampleRate <= 0 {
		return Spectrum{}, fmt.Errorf("analyze: sample rate must be > 0: %f: %w", a.cfg.SampleRate, core.ErrInvalidParameter)
	}
	if !core.AllFinite(signal) {
		return Spectrum{}, fmt.Errorf("analyze: input signal: %w", core.ErrNumericFault)
	}

	n := len(signal)

	in := make([]complex128, n)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Spectrum{}, fmt.Errorf("analyze: fft plan for size %d: %w", n, err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return Spectrum{}, fmt.Errorf("analyze: forward fft: %w", err)
	}

	bins := n/2 + 1
	mags := Magnitude(out[:bins])

	freqs := make([]float64, bins)
	binHz := a.cfg.SampleRate / float64(n)
	for k := range freqs {
		freqs[k] = float64(k) * binHz
	}

	return Spectrum{Freqs: freqs, Mags: mags}, nil
}
