// Package spectrum computes the magnitude spectrum of sampled signals.
//
// The Analyzer transforms one full display window at a time: the raw
// rectangular window implied by finite sampling, an FFT, and the
// non-negative-frequency magnitude bins. No window function is applied;
// that is fixed behavior, not an option.
package spectrum
