// Package welch estimates power spectral density by Welch's method of
// averaged modified periodograms.
//
// The signal is split into overlapping segments; each segment is
// detrended, windowed, and transformed, and the squared magnitudes are
// averaged and scaled to a one-sided density (unit²/Hz).
//
// Defaults follow common practice for short physiological series:
//   - Hann window in periodic (FFT framing) form
//   - 50% segment overlap
//   - linear detrending per segment
//   - adaptive segment length between 8 and 64 samples
//
// Common workflows:
//   - Estimate(signal, sampleRate, Config{})
//   - PSD.BandPower(BandLF) for band-integrated power
//   - AdaptiveSegmentLength(n) to inspect the segment sizing rule
package welch
