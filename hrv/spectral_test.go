package hrv

import (
	"testing"

	"github.com/cwbudde/algo-hrv/internal/testutil"
)

func TestSpectral_LFDominance(t *testing.T) {
	// RR modulation at 0.1 Hz lands in the 0.04-0.15 Hz band.
	window := testutil.ModulatedRR(800, 50, 0.1, 300)
	e := NewExtractor(Config{})

	got := e.Spectral(window)
	if !got.Valid {
		t.Fatal("estimation failed on a clean window")
	}
	if got.LF <= 0 {
		t.Fatalf("LF = %v, want > 0", got.LF)
	}
	if got.LF <= 5*got.HF {
		t.Errorf("LF %v does not dominate HF %v", got.LF, got.HF)
	}
	if got.LFHF <= 1 {
		t.Errorf("LFHF = %v, want > 1", got.LFHF)
	}
}

func TestSpectral_HFDominance(t *testing.T) {
	// 0.3 Hz modulation lands in the 0.15-0.40 Hz band.
	window := testutil.ModulatedRR(800, 50, 0.3, 300)
	e := NewExtractor(Config{})

	got := e.Spectral(window)
	if !got.Valid {
		t.Fatal("estimation failed on a clean window")
	}
	if got.HF <= 3*got.LF {
		t.Errorf("HF %v does not dominate LF %v", got.HF, got.LF)
	}
	if got.LFHF >= 1 {
		t.Errorf("LFHF = %v, want < 1", got.LFHF)
	}
}

func TestSpectral_LinearInterpolation(t *testing.T) {
	window := testutil.ModulatedRR(800, 50, 0.1, 300)
	e := NewExtractor(Config{Interpolation: InterpolationLinear})

	got := e.Spectral(window)
	if !got.Valid {
		t.Fatal("estimation failed on a clean window")
	}
	if got.LF <= 5*got.HF {
		t.Errorf("LF %v does not dominate HF %v", got.LF, got.HF)
	}
}

func TestSpectral_VLFNonNegative(t *testing.T) {
	window := testutil.NoisyRR(21, 800, 60, 300)
	e := NewExtractor(Config{})

	got := e.Spectral(window)
	if !got.Valid {
		t.Fatal("estimation failed")
	}
	if got.VLF < 0 {
		t.Errorf("VLF = %v, want >= 0", got.VLF)
	}
}

func TestSpectral_ConstantWindowMeasuresZero(t *testing.T) {
	// A flat series has no oscillatory power at all; the zeros are
	// measurements, not substitutions.
	window := testutil.ConstantRR(800, 60)
	e := NewExtractor(Config{})

	got := e.Spectral(window)
	if !got.Valid {
		t.Fatal("flat window must not be reported as a failure")
	}
	if got.LF != 0 || got.HF != 0 || got.LFHF != 0 {
		t.Errorf("got %+v, want zero powers", got)
	}
}

func TestSpectral_DegenerateAxisContained(t *testing.T) {
	// A zero interval collapses two beat times onto each other, which no
	// interpolant accepts. The window is contained, not propagated.
	window := testutil.NoisyRR(4, 800, 40, 60)
	window[10] = 0

	e := NewExtractor(Config{})

	got := e.Spectral(window)
	if got.Valid {
		t.Fatal("degenerate axis reported as valid")
	}
	if got != (SpectralResult{}) {
		t.Errorf("got %+v, want zero value", got)
	}
}

func TestSpectral_TinyWindows(t *testing.T) {
	e := NewExtractor(Config{})

	for _, n := range []int{0, 1, 2} {
		got := e.Spectral(testutil.ConstantRR(800, n))
		if got.Valid {
			t.Errorf("n=%d: reported valid", n)
		}
	}
}

func TestSpectral_BandsBelowResolution(t *testing.T) {
	// A 20-beat window spans about 16 s, leaving 0.25 Hz bins. Neither
	// band covers two bins at that resolution, so both powers are zero
	// while the estimate itself succeeds.
	window := testutil.NoisyRR(9, 800, 30, 20)
	e := NewExtractor(Config{})

	got := e.Spectral(window)
	if !got.Valid {
		t.Fatal("estimation failed")
	}
	if got.LF != 0 || got.HF != 0 {
		t.Errorf("LF = %v, HF = %v, want both 0", got.LF, got.HF)
	}
}

func TestSpectral_Deterministic(t *testing.T) {
	window := testutil.ModulatedRR(820, 45, 0.12, 200)
	e := NewExtractor(Config{})

	if a, b := e.Spectral(window), e.Spectral(window); a != b {
		t.Errorf("non-deterministic: %+v != %+v", a, b)
	}
}
