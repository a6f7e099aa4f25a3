package hrv

import (
	"math"

	"github.com/cwbudde/algo-hrv/dsp/interp"
	"github.com/cwbudde/algo-hrv/dsp/welch"
	"github.com/cwbudde/algo-hrv/rr"
)

// SpectralResult carries the frequency-domain band powers of one
// window. Valid is false when estimation failed and zeros were
// substituted. VLF is informational and not part of the feature record.
type SpectralResult struct {
	VLF   float64
	LF    float64
	HF    float64
	LFHF  float64
	Valid bool
}

// Spectral estimates band powers for one window. The beat-time axis is
// built from cumulative intervals, resampled onto a uniform grid at the
// configured rate, and passed through Welch estimation. Any failure in
// this stage (degenerate time axis, interpolation error, transform
// error) yields zero powers rather than an error: a malformed window
// must not abort a whole recording.
func (e *Extractor) Spectral(window rr.Series) SpectralResult {
	axis := window.TimeAxis()
	if len(axis) < 2 {
		return SpectralResult{}
	}

	grid := interp.UniformGrid(axis[0], axis[len(axis)-1], 1/e.cfg.FsInterp)
	if len(grid) == 0 {
		return SpectralResult{}
	}

	resampled, err := e.resample(axis, window, grid)
	if err != nil {
		return SpectralResult{}
	}

	psd, err := welch.Estimate(resampled, e.cfg.FsInterp, welch.Config{})
	if err != nil {
		return SpectralResult{}
	}

	vlf := psd.BandPower(welch.BandVLF)
	lf := psd.BandPower(welch.BandLF)
	hf := psd.BandPower(welch.BandHF)

	if !isFinite(vlf) || !isFinite(lf) || !isFinite(hf) {
		return SpectralResult{}
	}

	lfhf := 0.0
	if hf > 0 {
		lfhf = lf / hf
	}

	return SpectralResult{
		VLF:   vlf,
		LF:    lf,
		HF:    hf,
		LFHF:  lfhf,
		Valid: true,
	}
}

func (e *Extractor) resample(axis []float64, window rr.Series, grid []float64) ([]float64, error) {
	if e.cfg.Interpolation == InterpolationLinear {
		li, err := interp.NewLinear(axis, window)
		if err != nil {
			return nil, err
		}

		return li.Eval(grid), nil
	}

	sp, err := interp.NewSpline(axis, window)
	if err != nil {
		return nil, err
	}

	return sp.Eval(grid), nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
