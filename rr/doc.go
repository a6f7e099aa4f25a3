// Package rr models sequences of RR intervals (beat-to-beat times in
// milliseconds) and the basic transformations HRV analysis is built on.
//
// A [Series] is an ordered slice of interval durations for one subject.
// The package provides input validation, physiological artifact
// rejection, successive differences, and the cumulative time axis used
// for resampling onto a uniform grid:
//
//	series := rr.Series{812, 798, 805, 820}
//	if err := series.Validate(); err != nil {
//		return err
//	}
//	clean, dropped := rr.FilterArtifacts(series, rr.DefaultArtifactLow, rr.DefaultArtifactHigh)
//	t := clean.TimeAxis() // seconds, strictly increasing for valid input
package rr
