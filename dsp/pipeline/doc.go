// Package pipeline orchestrates the visualiser's processing chain:
// waveform synthesis, noise injection, Butterworth filtering, and
// spectral analysis of both the original and the filtered window.
//
// Each run is a pure function of an immutable Config snapshot and either
// fully succeeds or fully fails; no partial results are emitted. Hosts
// that generate configuration changes faster than runs complete can wrap
// a Runner in a LiveRunner, which applies last-write-wins supersession.
package pipeline
