// Package stats provides descriptive statistics for interval series:
// mean, sample deviation, percentiles, and histogram binning.
package stats

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean of the values.
// Returns 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	// Use Kahan summation for numerical stability.
	var sum, c float64
	for _, x := range values {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(values))
}

// SampleVariance returns the Bessel-corrected variance (divisor n-1)
// using Welford's online algorithm. Returns 0 for fewer than 2 values.
func SampleVariance(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}

	var mean, m2 float64
	for i, x := range values {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)
	}

	return m2 / float64(n-1)
}

// SampleStdDev returns the Bessel-corrected standard deviation.
// Returns 0 for fewer than 2 values.
func SampleStdDev(values []float64) float64 {
	return math.Sqrt(SampleVariance(values))
}

// RMS returns the root-mean-square of the values.
func RMS(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range values {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(values)))
}

// MinMax returns the smallest and largest value in a single pass.
// Returns (0, 0) for an empty slice.
func MinMax(values []float64) (minVal, maxVal float64) {
	if len(values) == 0 {
		return 0, 0
	}

	minVal = values[0]
	maxVal = values[0]

	for _, x := range values[1:] {
		if x < minVal {
			minVal = x
		}

		if x > maxVal {
			maxVal = x
		}
	}

	return minVal, maxVal
}

// Range returns max - min. Returns 0 for an empty slice.
func Range(values []float64) float64 {
	minVal, maxVal := MinMax(values)
	return maxVal - minVal
}

// Percentile returns the p-th percentile (p in [0, 100]) using linear
// interpolation between closest ranks. The input is not modified.
// Returns 0 for an empty slice; p is clamped to [0, 100].
func Percentile(values []float64, p float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	if n == 1 {
		return values[0]
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p = math.Min(100, math.Max(0, p))
	rank := p / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))

	if lo == hi {
		return sorted[lo]
	}

	frac := rank - float64(lo)

	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// Median returns the 50th percentile of the values.
func Median(values []float64) float64 {
	return Percentile(values, 50)
}

// Histogram bins the values into the given number of equal-width bins
// spanning [min, max]. The last bin is closed on both sides so the
// maximum value is counted. When all values coincide the span is
// widened by 0.5 on each side. Returns counts and the bins+1 edges;
// both are nil when the input is empty or bins < 1.
func Histogram(values []float64, bins int) (counts []int, edges []float64) {
	if len(values) == 0 || bins < 1 {
		return nil, nil
	}

	lo, hi := MinMax(values)
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	counts = make([]int, bins)
	edges = make([]float64, bins+1)
	width := (hi - lo) / float64(bins)

	for i := range edges {
		edges[i] = lo + float64(i)*width
	}

	edges[bins] = hi

	for _, x := range values {
		idx := int((x - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}

		if idx < 0 {
			idx = 0
		}

		counts[idx]++
	}

	return counts, edges
}
