// Package pass designs lowpass and highpass Butterworth cascades.
//
// The two band selections are structurally symmetric designs: the same
// section Q ladder applied to the lowpass or highpass biquad prototype.
package pass

import (
	"fmt"

	"github.com/RupanjanSaha123/Realtimesignalvisualiser/dsp/core"
	"github.com/RupanjanSaha123/Realtimesignalvisualiser/dsp/filter/biquad"
	"github.com/RupanjanSaha123/Realtimesignalvisualiser/dsp/filter/design"
)

// ButterworthLP designs a lowpass Butterworth cascade with band edge at
// freq (Hz). For odd orders, the final section is first-order (B2=A2=0).
//
// The cutoff must lie strictly between 0 and Nyquist; violations are
// reported wrapping core.ErrInvalidCutoff rather than returning
// degenerate coefficients.
func ButterworthLP(freq float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}
	// Validate the band edge up front so a zero-section even order can
	// never mask an invalid cutoff.
	if _, err := bilinearK(freq, sampleRate); err != nil {
		return nil, err
	}

	sections := make([]biquad.Coefficients, 0, (order+1)/2)

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		q := butterworthQ(order, i)
		c, err := design.Lowpass(freq, q, sampleRate)
		if err != nil {
			return nil, err
		}
		sections = append(sections, c)
	}
	if order%2 != 0 {
		c, err := butterworthFirstOrderLP(freq, sampleRate)
		if err != nil {
			return nil, err
		}
		sections = append(sections, c)
	}
	return sections, nil
}

// ButterworthHP designs a highpass Butterworth cascade with band edge at
// freq (Hz). For odd orders, the final section is first-order (B2=A2=0).
func ButterworthHP(freq float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}
	if _, err := bilinearK(freq, sampleRate); err != nil {
		return nil, err
	}

	sections := make([]biquad.Coefficients, 0, (order+1)/2)

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		q := butterworthQ(order, i)
		c, err := design.Highpass(freq, q, sampleRate)
		if err != nil {
			return nil, err
		}
		sections = append(sections, c)
	}
	if order%2 != 0 {
		c, err := butterworthFirstOrderHP(freq, sampleRate)
		if err != nil {
			return nil, err
		}
		sections = append(sections, c)
	}
	return sections, nil
}

func validateOrder(order int) error {
	if order <= 0 {
		return fmt.Errorf("filter order must be > 0: %d: %w", order, core.ErrInvalidParameter)
	}
	return nil
}
