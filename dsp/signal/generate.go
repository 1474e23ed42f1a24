// Package signal synthesizes the periodic base waveforms of the
// visualiser: sine, square, and sawtooth.
//
// All generators are pure functions of their inputs and bit-reproducible
// for identical parameters.
package signal

import (
	"fmt"
	"math"

	"github.com/RupanjanSaha123/Realtimesignalvisualiser/dsp/core"
)

// Generator creates deterministic waveforms from a shared configuration.
type Generator struct {
	cfg core.ProcessorConfig
}

// NewGenerator creates a configured waveform generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{cfg: core.ApplyProcessorOptions(opts...)}
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// TimeAxis returns the uniformly spaced time axis t[i] = i / sampleRate.
func (g *Generator) TimeAxis(samples int) ([]float64, error) {
	if err := g.validate(1, 1, samples); err != nil {
		return nil, fmt.Errorf("time axis: %w", err)
	}
	out := make([]float64, samples)
	inv := 1 / g.cfg.SampleRate
	for i := range out {
		out[i] = float64(i) * inv
	}
	return out, nil
}

// Sine generates amplitude * sin(2*pi*freq*t).
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.validate(freqHz, amplitude, samples); err != nil {
		return nil, fmt.Errorf("sine: %w", err)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// Square generates amplitude * sign(sin(2*pi*freq*t)).
//
// Samples where the underlying sine is exactly zero evaluate to
// +amplitude. The tie-break is fixed: sample 0 of every square wave is
// +amplitude.
func (g *Generator) Square(freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.validate(freqHz, amplitude, samples); err != nil {
		return nil, fmt.Errorf("square: %w", err)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		if math.Sin(step*float64(i)) >= 0 {
			out[i] = amplitude
		} else {
			out[i] = -amplitude
		}
	}
	return out, nil
}

// Sawtooth generates amplitude * 2*(freq*t - round(freq*t)), a ramp from
// -amplitude to +amplitude that resets at each period boundary.
func (g *Generator) Sawtooth(freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.validate(freqHz, amplitude, samples); err != nil {
		return nil, fmt.Errorf("sawtooth: %w", err)
	}
	out := make([]float64, samples)
	step := freqHz / g.cfg.SampleRate
	for i := range out {
		phase := step * float64(i)
		out[i] = amplitude * 2 * (phase - math.Floor(phase+0.5))
	}
	return out, nil
}

func (g *Generator) validate(freqHz, amplitude float64, samples int) error {
	if samples <= 0 {
		return fmt.Errorf("samples must be > 0: %d: %w", samples, core.ErrInvalidParameter)
	}
	if g.cfg.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be > 0: %f: %w", g.cfg.SampleRate, core.ErrInvalidParameter)
	}
	if freqHz <= 0 {
		return fmt.Errorf("frequency must be > 0: %f: %w", freqHz, core.ErrInvalidParameter)
	}
	if amplitude <= 0 {
		return fmt.Errorf("amplitude must be > 0: %f: %w", amplitude, core.ErrInvalidParameter)
	}
	return nil
}
