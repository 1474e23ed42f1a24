package pass

import (
	"fmt"
	"math"

	"github.com/RupanjanSaha123/Realtimesignalvisualiser/dsp/core"
	"github.com/RupanjanSaha123/Realtimesignalvisualiser/dsp/filter/biquad"
)

// bilinearK computes the bilinear transform frequency warping factor
// tan(pi*freq/sampleRate), validating the band edge against Nyquist.
func bilinearK(freq, sampleRate float64) (float64, error) {
	if sampleRate <= 0 {
		return 0, fmt.Errorf("sample rate must be > 0: %f: %w", sampleRate, core.ErrInvalidParameter)
	}
	if freq <= 0 || freq >= sampleRate/2 {
		return 0, fmt.Errorf("cutoff must be in (0, %f): %f: %w", sampleRate/2, freq, core.ErrInvalidCutoff)
	}

	return math.Tan(math.Pi * freq / sampleRate), nil
}

// butterworthQ returns the quality factor for a Butterworth filter section.
// index ranges from 0 to (order/2 - 1) for the biquad sections.
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	s := math.Sin(theta)
	if s == 0 {
		return 1 / math.Sqrt2 // default Q
	}

	return 1 / (2 * s)
}

// butterworthFirstOrderLP designs a first-order lowpass Butterworth
// section, used as the tail of odd-order cascades.
func butterworthFirstOrderLP(freq, sampleRate float64) (biquad.Coefficients, error) {
	k, err := bilinearK(freq, sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: k * norm,
		B1: k * norm,
		B2: 0,
		A1: (k - 1) * norm,
		A2: 0,
	}, nil
}

// butterworthFirstOrderHP designs a first-order highpass Butterworth
// section, used as the tail of odd-order cascades.
func butterworthFirstOrderHP(freq, sampleRate float64) (biquad.Coefficients, error) {
	k, err := bilinearK(freq, sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: norm,
		B1: -norm,
		B2: 0,
		A1: (k - 1) * norm,
		A2: 0,
	}, nil
}
