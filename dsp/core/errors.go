package core

import "errors"

// Error taxonomy of the pipeline. Components wrap these sentinels with
// fmt.Errorf("...: %w", ...) so callers can match with errors.Is.
var (
	// ErrInvalidParameter reports a configuration value outside its
	// documented range reaching a core component.
	ErrInvalidParameter = errors.New("parameter out of range")

	// ErrInvalidCutoff reports a filter cutoff at or beyond Nyquist,
	// or non-positive.
	ErrInvalidCutoff = errors.New("cutoff frequency out of range")

	// ErrNumericFault reports a computation step producing non-finite
	// values.
	ErrNumericFault = errors.New("non-finite value in computation")
)
