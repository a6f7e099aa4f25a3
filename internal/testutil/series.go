// Package testutil provides deterministic RR series generators and
// tolerance helpers shared by tests.
package testutil

import (
	"math"
	"math/rand"
)

// ConstantRR returns n identical intervals in milliseconds.
func ConstantRR(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}

	return out
}

// ModulatedRR returns intervals oscillating around base with the given
// amplitude at modFreq Hz. Beat times are approximated as multiples of
// the base interval, which plants spectral power near modFreq.
func ModulatedRR(base, amplitude, modFreq float64, n int) []float64 {
	out := make([]float64, n)
	beat := base / 1000

	for i := range out {
		t := float64(i) * beat
		out[i] = base + amplitude*math.Sin(2*math.Pi*modFreq*t)
	}

	return out
}

// NoisyRR returns base intervals with seeded uniform jitter of up to
// ±jitter milliseconds, reproducible across runs.
func NoisyRR(seed int64, base, jitter float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))

	for i := range out {
		out[i] = base + (rng.Float64()*2-1)*jitter
	}

	return out
}
