package pipeline

import (
	"fmt"

	"github.com/RupanjanSaha123/Realtimesignalvisualiser/dsp/core"
	"github.com/RupanjanSaha123/Realtimesignalvisualiser/dsp/filter/biquad"
	"github.com/RupanjanSaha123/Realtimesignalvisualiser/dsp/filter/design/pass"
	"github.com/RupanjanSaha123/Realtimesignalvisualiser/dsp/noise"
	"github.com/RupanjanSaha123/Realtimesignalvisualiser/dsp/signal"
	"github.com/RupanjanSaha123/Realtimesignalvisualiser/dsp/spectrum"
)

// Series is one uniformly spaced time-domain trace: Time[i] and
// Values[i] pair up, ordered by time ascending.
type Series struct {
	Time   []float64
	Values []float64
}

// Len returns the sample count.
func (s Series) Len() int { return len(s.Values) }

// Result bundles everything one pipeline run hands to the display:
// original and filtered traces plus their magnitude spectra.
type Result struct {
	Config Config

	Original Series
	Filtered Series

	OriginalSpectrum spectrum.Spectrum
	FilteredSpectrum spectrum.Spectrum
}

// Runner executes the full pipeline for one Config at a time.
// It holds only immutable component configuration, so a Runner is safe
// for sequential reuse across unrelated configs.
type Runner struct {
	gen      *signal.Generator
	analyzer *spectrum.Analyzer
	samples  int
}

// NewRunner creates a pipeline runner over the fixed display window
// (SampleRate x Duration samples).
func NewRunner() *Runner {
	opts := []core.ProcessorOption{
		core.WithSampleRate(SampleRate),
		core.WithDuration(Duration),
	}
	gen := signal.NewGenerator(opts...)
	return &Runner{
		gen:      gen,
		analyzer: spectrum.NewAnalyzer(opts...),
		samples:  gen.Config().WindowSamples(),
	}
}

// Run executes one full pass: generate, inject noise, design the filter,
// apply it, and analyze both signals. The sequence either fully succeeds
// or returns a zero Result with a typed error; original/filtered pairs
// are never emitted mismatched.
func (r *Runner) Run(cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("run: %w", err)
	}

	base, err := r.generate(cfg)
	if err != nil {
		return Result{}, fmt.Errorf("run: %w", err)
	}

	timeAxis, err := r.gen.TimeAxis(r.samples)
	if err != nil {
		return Result{}, fmt.Errorf("run: %w", err)
	}

	original, err := r.inject(base, cfg)
	if err != nil {
		return Result{}, fmt.Errorf("run: %w", err)
	}

	filtered, err := r.filter(original, cfg)
	if err != nil {
		return Result{}, fmt.Errorf("run: %w", err)
	}

	originalSpec, err := r.analyzer.Analyze(original)
	if err != nil {
		return Result{}, fmt.Errorf("run: original spectrum: %w", err)
	}
	filteredSpec, err := r.analyzer.Analyze(filtered)
	if err != nil {
		return Result{}, fmt.Errorf("run: filtered spectrum: %w", err)
	}

	return Result{
		Config:           cfg,
		Original:         Series{Time: timeAxis, Values: original},
		Filtered:         Series{Time: timeAxis, Values: filtered},
		OriginalSpectrum: originalSpec,
		FilteredSpectrum: filteredSpec,
	}, nil
}

func (r *Runner) generate(cfg Config) ([]float64, error) {
	switch cfg.Waveform {
	case WaveformSine:
		return r.gen.Sine(cfg.Frequency, cfg.Amplitude, r.samples)
	case WaveformSquare:
		return r.gen.Square(cfg.Frequency, cfg.Amplitude, r.samples)
	case WaveformSawtooth:
		return r.gen.Sawtooth(cfg.Frequency, cfg.Amplitude, r.samples)
	default:
		return nil, fmt.Errorf("unknown waveform %q: %w", cfg.Waveform, core.ErrInvalidParameter)
	}
}

func (r *Runner) inject(base []float64, cfg Config) ([]float64, error) {
	var opts []noise.Option
	if cfg.NoiseSeed != 0 {
		opts = append(opts, noise.WithSeed(cfg.NoiseSeed))
	}
	return noise.NewInjector(opts...).Inject(base, cfg.NoiseLevel, cfg.Amplitude)
}

// filter designs fresh coefficients for the config and applies them
// causally over a copy of the input, starting from zero filter state.
// Coefficients are never reused across configs.
func (r *Runner) filter(input []float64, cfg Config) ([]float64, error) {
	var (
		coeffs []biquad.Coefficients
		err    error
	)
	switch cfg.Filter {
	case FilterLowPass:
		coeffs, err = pass.ButterworthLP(cfg.Cutoff, FilterOrder, SampleRate)
	case FilterHighPass:
		coeffs, err = pass.ButterworthHP(cfg.Cutoff, FilterOrder, SampleRate)
	default:
		return nil, fmt.Errorf("unknown filter %q: %w", cfg.Filter, core.ErrInvalidParameter)
	}
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(input))
	copy(out, input)

	chain := biquad.NewChain(coeffs)
	chain.ProcessBlock(out)

	if !core.AllFinite(out) {
		return nil, fmt.Errorf("filter output: %w", core.ErrNumericFault)
	}
	return out, nil
}
