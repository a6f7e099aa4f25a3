package hrv

import (
	"math"

	"github.com/cwbudde/algo-hrv/rr"
	"github.com/cwbudde/algo-hrv/stats"
)

// Poincare returns the SD1 and SD2 descriptors of the window: sample
// deviations of the rotated successive-pair coordinates
// (rr[i+1]-rr[i])/sqrt2 and (rr[i+1]+rr[i])/sqrt2. Both are zero for
// windows with fewer than two samples.
func Poincare(window rr.Series) (sd1, sd2 float64) {
	n := len(window)
	if n < 2 {
		return 0, 0
	}

	across := make([]float64, n-1)
	along := make([]float64, n-1)

	for i := 0; i < n-1; i++ {
		across[i] = (window[i+1] - window[i]) / math.Sqrt2
		along[i] = (window[i+1] + window[i]) / math.Sqrt2
	}

	return stats.SampleStdDev(across), stats.SampleStdDev(along)
}
