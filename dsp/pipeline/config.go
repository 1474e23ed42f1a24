package pipeline

import (
	"fmt"

	"github.com/RupanjanSaha123/Realtimesignalvisualiser/dsp/core"
)

// Waveform selects the base periodic signal shape.
type Waveform string

// Supported waveform kinds.
const (
	WaveformSine     Waveform = "sine"
	WaveformSquare   Waveform = "square"
	WaveformSawtooth Waveform = "sawtooth"
)

// FilterKind selects the filter band.
type FilterKind string

// Supported filter kinds.
const (
	FilterLowPass  FilterKind = "low_pass"
	FilterHighPass FilterKind = "high_pass"
)

// Fixed processing constants of the display window and filter design.
const (
	SampleRate  = 1000.0 // Hz
	Duration    = 2.0    // seconds
	FilterOrder = 4      // Butterworth
)

// Documented parameter ranges. The control panel clamps raw widget
// values into these before building a Config; Validate re-checks them
// defensively and rejects rather than clamps.
const (
	MinFrequency  = 1.0
	MaxFrequency  = 20.0
	MinAmplitude  = 0.1
	MaxAmplitude  = 2.0
	MinNoiseLevel = 0.0
	MaxNoiseLevel = 1.0
	MinCutoff     = 1.0
	MaxCutoff     = 50.0
)

// Config is one immutable configuration snapshot driving a pipeline run.
type Config struct {
	Waveform   Waveform
	Frequency  float64 // Hz, [1, 20]
	Amplitude  float64 // [0.1, 2.0]
	NoiseLevel float64 // [0.0, 1.0]
	Filter     FilterKind
	Cutoff     float64 // Hz, [1, 50]

	// NoiseSeed fixes the noise source for reproducible runs.
	// Zero selects a nondeterministic seed.
	NoiseSeed int64
}

// DefaultConfig returns the reset target: a clean 5 Hz sine through a
// 10 Hz low-pass with no noise. Reset is an ordinary Run of this config,
// not a special code path.
func DefaultConfig() Config {
	return Config{
		Waveform:   WaveformSine,
		Frequency:  5,
		Amplitude:  1,
		NoiseLevel: 0,
		Filter:     FilterLowPass,
		Cutoff:     10,
	}
}

// Validate rejects any field outside its documented range.
func (c Config) Validate() error {
	switch c.Waveform {
	case WaveformSine, WaveformSquare, WaveformSawtooth:
	default:
		return fmt.Errorf("waveform must be sine, square, or sawtooth: %q: %w", c.Waveform, core.ErrInvalidParameter)
	}

	switch c.Filter {
	case FilterLowPass, FilterHighPass:
	default:
		return fmt.Errorf("filter must be low_pass or high_pass: %q: %w", c.Filter, core.ErrInvalidParameter)
	}

	if !core.InRange(c.Frequency, MinFrequency, MaxFrequency) {
		return fmt.Errorf("frequency must be in [%g, %g] Hz: %f: %w", MinFrequency, MaxFrequency, c.Frequency, core.ErrInvalidParameter)
	}
	if !core.InRange(c.Amplitude, MinAmplitude, MaxAmplitude) {
		return fmt.Errorf("amplitude must be in [%g, %g]: %f: %w", MinAmplitude, MaxAmplitude, c.Amplitude, core.ErrInvalidParameter)
	}
	if !core.InRange(c.NoiseLevel, MinNoiseLevel, MaxNoiseLevel) {
		return fmt.Errorf("noise level must be in [%g, %g]: %f: %w", MinNoiseLevel, MaxNoiseLevel, c.NoiseLevel, core.ErrInvalidParameter)
	}
	if !core.InRange(c.Cutoff, MinCutoff, MaxCutoff) {
		return fmt.Errorf("cutoff must be in [%g, %g] Hz: %f: %w", MinCutoff, MaxCutoff, c.Cutoff, core.ErrInvalidParameter)
	}

	return nil
}
