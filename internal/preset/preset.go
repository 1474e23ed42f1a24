// Package preset maps YAML preset files and a few built-in presets onto
// pipeline configurations.
package preset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/RupanjanSaha123/Realtimesignalvisualiser/dsp/pipeline"
)

// Preset is the on-disk form of a pipeline configuration.
type Preset struct {
	Waveform    string  `yaml:"waveform"`
	FrequencyHz float64 `yaml:"frequency_hz"`
	Amplitude   float64 `yaml:"amplitude"`
	NoiseLevel  float64 `yaml:"noise_level"`
	Filter      string  `yaml:"filter"`
	CutoffHz    float64 `yaml:"cutoff_hz"`
	NoiseSeed   int64   `yaml:"noise_seed"`
}

// Config converts the preset to a validated pipeline configuration.
func (p Preset) Config() (pipeline.Config, error) {
	cfg := pipeline.Config{
		Waveform:   pipeline.Waveform(p.Waveform),
		Frequency:  p.FrequencyHz,
		Amplitude:  p.Amplitude,
		NoiseLevel: p.NoiseLevel,
		Filter:     pipeline.FilterKind(p.Filter),
		Cutoff:     p.CutoffHz,
		NoiseSeed:  p.NoiseSeed,
	}
	if err := cfg.Validate(); err != nil {
		return pipeline.Config{}, fmt.Errorf("preset: %w", err)
	}
	return cfg, nil
}

// FromConfig converts a pipeline configuration into its preset form.
func FromConfig(cfg pipeline.Config) Preset {
	return Preset{
		Waveform:    string(cfg.Waveform),
		FrequencyHz: cfg.Frequency,
		Amplitude:   cfg.Amplitude,
		NoiseLevel:  cfg.NoiseLevel,
		Filter:      string(cfg.Filter),
		CutoffHz:    cfg.Cutoff,
		NoiseSeed:   cfg.NoiseSeed,
	}
}

// Load reads and validates a preset file.
func Load(path string) (pipeline.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pipeline.Config{}, fmt.Errorf("preset: %w", err)
	}

	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return pipeline.Config{}, fmt.Errorf("preset %s: %w", path, err)
	}

	return p.Config()
}

// Builtin holds named presets shipped with the CLI, in display order.
var Builtin = []struct {
	Name   string
	Preset Preset
}{
	{"defaults", FromConfig(pipeline.DefaultConfig())},
	{"noisy-sine", Preset{Waveform: "sine", FrequencyHz: 10, Amplitude: 1.5, NoiseLevel: 0.5, Filter: "low_pass", CutoffHz: 8, NoiseSeed: 1}},
	{"square-highpass", Preset{Waveform: "square", FrequencyHz: 5, Amplitude: 1, Filter: "high_pass", CutoffHz: 20}},
	{"sawtooth-smooth", Preset{Waveform: "sawtooth", FrequencyHz: 8, Amplitude: 1, Filter: "low_pass", CutoffHz: 12}},
}

// Lookup returns the built-in preset with the given name.
func Lookup(name string) (Preset, bool) {
	for _, b := range Builtin {
		if b.Name == name {
			return b.Preset, true
		}
	}
	return Preset{}, false
}
