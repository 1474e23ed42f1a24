// Package noise adds bounded stochastic perturbation to sampled signals.
package noise

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/RupanjanSaha123/Realtimesignalvisualiser/dsp/core"
)

// Injector adds independent zero-mean uniform noise to each sample.
// The perturbation of each sample lies in [-level*scale, +level*scale].
type Injector struct {
	seed   int64
	seeded bool
}

// Option configures an Injector.
type Option func(*Injector)

// WithSeed fixes the random seed so repeated injections with identical
// inputs reproduce identical output.
func WithSeed(seed int64) Option {
	return func(n *Injector) {
		n.seed = seed
		n.seeded = true
	}
}

// NewInjector creates a noise injector. Without WithSeed, each injection
// draws from a time-seeded source and runs may differ.
func NewInjector(opts ...Option) *Injector {
	n := &Injector{}
	for _, opt := range opts {
		if opt != nil {
			opt(n)
		}
	}
	return n
}

// Inject returns signal plus uniform noise on [-level*scale, +level*scale].
//
// A level of exactly 0 disables noise: the output is a bit-identical copy
// of the input and no random numbers are drawn.
func (n *Injector) Inject(signal []float64, level, scale float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("inject: signal must not be empty: %w", core.ErrInvalidParameter)
	}
	if level < 0 || level > 1 {
		return nil, fmt.Errorf("inject: noise level must be in [0, 1]: %f: %w", level, core.ErrInvalidParameter)
	}
	if scale <= 0 {
		return nil, fmt.Errorf("inject: noise scale must be > 0: %f: %w", scale, core.ErrInvalidParameter)
	}

	out := make([]float64, len(signal))
	copy(out, signal)
	if level == 0 {
		return out, nil
	}

	seed := n.seed
	if !n.seeded {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	peak := level * scale
	for i := range out {
		out[i] += (rng.Float64()*2 - 1) * peak
	}
	return out, nil
}
