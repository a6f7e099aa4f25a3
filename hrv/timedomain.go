package hrv

import (
	"math"

	"github.com/cwbudde/algo-hrv/rr"
	"github.com/cwbudde/algo-hrv/stats"
)

// pNN50 counts successive differences whose magnitude exceeds this many
// milliseconds.
const pnnThresholdMs = 50.0

func timeDomain(window rr.Series) (meanRR, sdnn, rmssd, pnn50, cv float64) {
	meanRR = stats.Mean(window)
	sdnn = stats.SampleStdDev(window)

	diffs := window.Diffs()
	rmssd = stats.RMS(diffs)

	if len(diffs) > 0 {
		over := 0
		for _, d := range diffs {
			if math.Abs(d) > pnnThresholdMs {
				over++
			}
		}

		pnn50 = float64(over) / float64(len(diffs)) * 100
	}

	if meanRR != 0 {
		cv = sdnn / meanRR * 100
	}

	return meanRR, sdnn, rmssd, pnn50, cv
}
