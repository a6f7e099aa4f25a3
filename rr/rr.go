package rr

import (
	"fmt"
	"math"
)

// Physiological plausibility bounds for a single RR interval in
// milliseconds. Beats outside this range are treated as detection
// artifacts (ectopic beats, missed or doubled R peaks).
const (
	DefaultArtifactLow  = 300.0
	DefaultArtifactHigh = 2000.0
)

// Series is one subject's ordered sequence of RR intervals in
// milliseconds. A Series is owned by the caller and never mutated by
// this module; windowing hands out subslices that share its backing
// array.
type Series []float64

// Validate checks that the series is non-empty and that every interval
// is a positive, finite number. It returns the first violation found.
func (s Series) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("rr: series must not be empty")
	}

	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("rr: non-finite interval %v at index %d", v, i)
		}

		if v <= 0 {
			return fmt.Errorf("rr: interval must be > 0 ms, got %v at index %d", v, i)
		}
	}

	return nil
}

// Clone returns an independent copy of the series.
func (s Series) Clone() Series {
	if s == nil {
		return nil
	}

	out := make(Series, len(s))
	copy(out, s)

	return out
}

// Diffs returns the successive differences d[i] = s[i+1] - s[i].
// Series with fewer than two samples yield an empty slice.
func (s Series) Diffs() []float64 {
	if len(s) < 2 {
		return nil
	}

	out := make([]float64, len(s)-1)
	for i := range out {
		out[i] = s[i+1] - s[i]
	}

	return out
}

// TimeAxis returns the cumulative beat times in seconds: the i-th entry
// is the sum of the first i+1 intervals divided by 1000. For a valid
// series (all intervals > 0) the axis is strictly increasing, which the
// spline resampler relies on.
func (s Series) TimeAxis() []float64 {
	if len(s) == 0 {
		return nil
	}

	out := make([]float64, len(s))
	sum := 0.0

	for i, v := range s {
		sum += v
		out[i] = sum / 1000.0
	}

	return out
}

// FilterArtifacts returns the intervals of s that lie inside [lo, hi]
// (inclusive), preserving order, together with the number of intervals
// dropped. Bounds are in milliseconds; lo must not exceed hi.
func FilterArtifacts(s Series, lo, hi float64) (Series, int) {
	if lo > hi {
		lo, hi = hi, lo
	}

	out := make(Series, 0, len(s))
	for _, v := range s {
		if v >= lo && v <= hi {
			out = append(out, v)
		}
	}

	return out, len(s) - len(out)
}
