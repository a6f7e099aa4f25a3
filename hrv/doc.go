// Package hrv extracts heart-rate-variability features from RR interval
// series using sliding windows.
//
// Each window yields a fixed record of eleven features spanning three
// domains:
//   - time: mean_rr, sdnn, rmssd, pnn50, cv
//   - frequency: lf, hf, lf_hf (Welch PSD over a spline-resampled axis)
//   - nonlinear: sd1, sd2 (Poincaré), si (Baevsky stress index)
//
// Windows shorter than [MinWindowSamples] are rejected with
// [ErrInsufficientData] and dropped from matrices. Frequency features
// degrade to zero when spectral estimation fails on degenerate input;
// [Features.SpectralOK] preserves the distinction between a measured
// zero and a substituted one.
//
// Common workflows:
//   - NewExtractor(Config{}).Extract(window) for one window
//   - NewExtractor(Config{}).BuildMatrix(series) for a full recording
//   - Windows(series, 60, 20) to inspect the segmentation
package hrv
