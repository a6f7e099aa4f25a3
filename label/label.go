package label

import "github.com/cwbudde/algo-hrv/stats"

// Binary class values emitted by the labelling protocols.
const (
	Baseline = 0
	Stress   = 1
)

// DefaultFixedThreshold is the conventional stress-index cutoff for
// FixedThreshold.
const DefaultFixedThreshold = 20.0

// FixedThreshold labels each stress-index value, marking values
// strictly above threshold as Stress. The returned slice is aligned
// with the input rows.
func FixedThreshold(si []float64, threshold float64) []int {
	if len(si) == 0 {
		return nil
	}

	out := make([]int, len(si))
	for i, v := range si {
		if v > threshold {
			out[i] = Stress
		}
	}

	return out
}

// MedianSplit labels each stress-index value against the median of the
// input. Values strictly above the median are Stress; ties go to
// Baseline. Called once per subject this guarantees a near-even class
// balance regardless of the subject's absolute stress level.
func MedianSplit(si []float64) []int {
	if len(si) == 0 {
		return nil
	}

	return FixedThreshold(si, stats.Median(si))
}

// Counts tallies a label slice into per-class totals. Values other
// than Baseline and Stress are ignored.
func Counts(labels []int) (baseline, stress int) {
	for _, l := range labels {
		switch l {
		case Baseline:
			baseline++
		case Stress:
			stress++
		}
	}

	return baseline, stress
}
