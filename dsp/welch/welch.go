package welch

import (
	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-hrv/dsp/window"
)

const (
	defaultOverlap    = 0.5
	minSegmentLength  = 8
	maxSegmentLength  = 64
	segmentDivisor    = 4
	minAbsoluteLength = 2
)

// Detrend selects per-segment trend removal before windowing.
type Detrend int

const (
	// DetrendLinear subtracts a least-squares line from each segment.
	DetrendLinear Detrend = iota
	// DetrendConstant subtracts the segment mean.
	DetrendConstant
	// DetrendNone leaves segments unmodified.
	DetrendNone
)

// Config holds Welch estimation parameters. The zero value selects an
// adaptive segment length, 50% overlap, a Hann window, and linear
// detrending.
type Config struct {
	SegmentLength int     // samples per segment; <= 0 picks AdaptiveSegmentLength
	Overlap       float64 // overlap fraction in (0, 1); <= 0 picks 0.5
	Window        window.Type
	Detrend       Detrend
}

// Band is a frequency interval in Hz, inclusive on both edges.
type Band struct {
	Low  float64
	High float64
}

// Standard heart-rate-variability analysis bands.
var (
	BandVLF = Band{Low: 0.003, High: 0.04}
	BandLF  = Band{Low: 0.04, High: 0.15}
	BandHF  = Band{Low: 0.15, High: 0.40}
)

// PSD is a one-sided power spectral density estimate.
type PSD struct {
	Freqs         []float64 // bin frequencies in Hz, DC through Nyquist
	Power         []float64 // density per bin, unit²/Hz
	SegmentLength int       // samples per segment after clamping
	FFTSize       int       // transform size (zero-padded power of two)
	Segments      int       // averaged segment count
	Resolution    float64   // bin spacing in Hz
}

// AdaptiveSegmentLength returns the segment length used when none is
// configured: a quarter of the signal, clamped to [8, 64]. Short series
// keep enough segments for averaging without degenerating to a single
// periodogram.
func AdaptiveSegmentLength(n int) int {
	seg := n / segmentDivisor
	if seg < minSegmentLength {
		seg = minSegmentLength
	}

	if seg > maxSegmentLength {
		seg = maxSegmentLength
	}

	return seg
}

// Estimate computes the one-sided Welch PSD of signal sampled at
// sampleRate Hz.
func Estimate(signal []float64, sampleRate float64, cfg Config) (PSD, error) {
	if err := validateInput(signal, sampleRate); err != nil {
		return PSD{}, err
	}

	cfg = normalizeConfig(cfg)

	n := len(signal)

	seg := cfg.SegmentLength
	if seg <= 0 {
		seg = AdaptiveSegmentLength(n)
	}

	if seg > n {
		seg = n
	}

	if seg < minAbsoluteLength {
		return PSD{}, validateSegment(seg)
	}

	step := seg - int(cfg.Overlap*float64(seg))
	if step <= 0 {
		return PSD{}, validateStep(step)
	}

	coeffs := window.Generate(cfg.Window, seg, window.WithPeriodic())

	var windowPower float64
	for _, w := range coeffs {
		windowPower += w * w
	}

	if windowPower == 0 {
		return PSD{}, errZeroWindowPower
	}

	fftSize := nextPowerOf2(seg)
	binCount := fftSize/2 + 1

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return PSD{}, err
	}

	var (
		segBuf   = make([]float64, seg)
		inData   = make([]complex128, fftSize)
		outData  = make([]complex128, fftSize)
		re       = make([]float64, binCount)
		im       = make([]float64, binCount)
		periodo  = make([]float64, binCount)
		accum    = make([]float64, binCount)
		segments int
	)

	for start := 0; start+seg <= n; start += step {
		copy(segBuf, signal[start:start+seg])
		detrendInPlace(segBuf, cfg.Detrend)

		if err := window.ApplyCoefficientsInPlace(segBuf, coeffs); err != nil {
			return PSD{}, err
		}

		for i := range inData {
			if i < seg {
				inData[i] = complex(segBuf[i], 0)
			} else {
				inData[i] = 0
			}
		}

		if err := plan.Forward(outData, inData); err != nil {
			return PSD{}, err
		}

		for k := 0; k < binCount; k++ {
			re[k] = real(outData[k])
			im[k] = imag(outData[k])
		}

		vecmath.Power(periodo, re, im)
		vecmath.AddBlockInPlace(accum, periodo)
		segments++
	}

	// Average, scale to density, and fold to one-sided form. DC and
	// Nyquist have no mirror bin and stay single.
	scale := 1 / (float64(segments) * sampleRate * windowPower)
	vecmath.ScaleBlock(accum, accum, scale)

	for k := 1; k < binCount-1; k++ {
		accum[k] *= 2
	}

	resolution := sampleRate / float64(fftSize)

	freqs := make([]float64, binCount)
	for k := range freqs {
		freqs[k] = float64(k) * resolution
	}

	return PSD{
		Freqs:         freqs,
		Power:         accum,
		SegmentLength: seg,
		FFTSize:       fftSize,
		Segments:      segments,
		Resolution:    resolution,
	}, nil
}

// BandPower integrates the density over the band with the trapezoidal
// rule. A band covering fewer than 2 bins contributes zero rather than
// failing; short transforms simply cannot resolve it.
func (p PSD) BandPower(b Band) float64 {
	lo, hi := b.Low, b.High
	if hi < lo {
		lo, hi = hi, lo
	}

	i0 := 0
	for i0 < len(p.Freqs) && p.Freqs[i0] < lo {
		i0++
	}

	i1 := i0
	for i1 < len(p.Freqs) && p.Freqs[i1] <= hi {
		i1++
	}

	if i1-i0 < 2 {
		return 0
	}

	var sum float64
	for i := i0; i < i1-1; i++ {
		sum += (p.Power[i] + p.Power[i+1]) / 2 * (p.Freqs[i+1] - p.Freqs[i])
	}

	return sum
}

// TotalPower integrates the full density from DC to Nyquist.
func (p PSD) TotalPower() float64 {
	if len(p.Freqs) == 0 {
		return 0
	}

	return p.BandPower(Band{Low: p.Freqs[0], High: p.Freqs[len(p.Freqs)-1]})
}

func normalizeConfig(cfg Config) Config {
	if cfg.Overlap <= 0 || cfg.Overlap >= 1 {
		cfg.Overlap = defaultOverlap
	}

	if cfg.Window == window.TypeRectangular {
		cfg.Window = window.TypeHann
	}

	return cfg
}

func detrendInPlace(buf []float64, mode Detrend) {
	m := len(buf)
	if m == 0 || mode == DetrendNone {
		return
	}

	var sumY float64
	for _, y := range buf {
		sumY += y
	}

	if mode == DetrendConstant || m == 1 {
		mean := sumY / float64(m)
		for i := range buf {
			buf[i] -= mean
		}

		return
	}

	// Least-squares line over sample indices 0..m-1.
	mf := float64(m)
	sumT := mf * (mf - 1) / 2
	sumTT := (mf - 1) * mf * (2*mf - 1) / 6

	var sumTY float64
	for i, y := range buf {
		sumTY += float64(i) * y
	}

	denom := mf*sumTT - sumT*sumT
	if denom == 0 {
		return
	}

	slope := (mf*sumTY - sumT*sumY) / denom
	intercept := (sumY - slope*sumT) / mf

	for i := range buf {
		buf[i] -= intercept + slope*float64(i)
	}
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
