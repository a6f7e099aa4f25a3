package hrv

import (
	"github.com/cwbudde/algo-hrv/rr"
	"github.com/cwbudde/algo-hrv/stats"
)

const (
	// MinStressSamples is the smallest window the stress index accepts;
	// below it the index is 0.
	MinStressSamples = 10

	maxStressBins = 50
)

// StressIndex returns the Baevsky stress index of the window:
// AMo / (2 * Mo * MxDMn), with the mode Mo (center of the tallest
// histogram bin) and variation range MxDMn taken in seconds and the
// mode amplitude AMo in percent. Degenerate windows (too short, zero
// mode, zero range) return 0.
func StressIndex(window rr.Series) float64 {
	n := len(window)
	if n < MinStressSamples {
		return 0
	}

	bins := n / 2
	if bins > maxStressBins {
		bins = maxStressBins
	}

	counts, edges := stats.Histogram(window, bins)
	if len(counts) == 0 {
		return 0
	}

	tallest := 0
	for i, c := range counts {
		if c > counts[tallest] {
			tallest = i
		}
	}

	mo := (edges[tallest] + edges[tallest+1]) / 2 / 1000
	amo := float64(counts[tallest]) / float64(n) * 100
	mxdmn := stats.Range(window) / 1000

	if mo == 0 || mxdmn == 0 {
		return 0
	}

	return amo / (2 * mo * mxdmn)
}
