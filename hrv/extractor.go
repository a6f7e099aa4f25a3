package hrv

import "github.com/cwbudde/algo-hrv/rr"

const (
	// MinWindowSamples is the default minimum window length for full
	// extraction; shorter windows return [ErrInsufficientData].
	MinWindowSamples = 20

	defaultWindowBeats = 60
	defaultStepBeats   = 20
	defaultFsInterp    = 4.0
)

// Interpolation selects the resampling interpolant used before
// spectral estimation.
type Interpolation int

const (
	// InterpolationCubic fits a natural cubic spline (default).
	InterpolationCubic Interpolation = iota
	// InterpolationLinear fits a piecewise linear interpolant.
	InterpolationLinear
)

// Config holds extraction parameters. The zero value selects 60-beat
// windows at a 20-beat stride with 4 Hz cubic resampling and serial
// matrix builds.
type Config struct {
	Window        int     // beats per window; <= 0 picks 60
	Step          int     // stride in beats; <= 0 picks 20
	FsInterp      float64 // resampling rate in Hz; <= 0 picks 4
	MinSamples    int     // shortest window Extract accepts; <= 0 picks 20
	Concurrency   int     // workers for BuildMatrix; <= 1 runs serially
	Interpolation Interpolation
}

// Extractor computes feature records from RR windows.
type Extractor struct {
	cfg Config
}

// NewExtractor creates an extractor, replacing out-of-range
// configuration values with defaults.
func NewExtractor(cfg Config) *Extractor {
	return &Extractor{cfg: normalizeConfig(cfg)}
}

// Config returns the normalized configuration in use.
func (e *Extractor) Config() Config {
	return e.cfg
}

func normalizeConfig(cfg Config) Config {
	if cfg.Window <= 0 {
		cfg.Window = defaultWindowBeats
	}

	if cfg.Step <= 0 {
		cfg.Step = defaultStepBeats
	}

	if cfg.FsInterp <= 0 {
		cfg.FsInterp = defaultFsInterp
	}

	if cfg.MinSamples <= 0 {
		cfg.MinSamples = MinWindowSamples
	}

	return cfg
}

// Extract computes the feature record for one window. Windows shorter
// than the configured minimum return [ErrInsufficientData]; every
// other input produces a complete record, with frequency features
// zeroed when spectral estimation fails.
func (e *Extractor) Extract(window rr.Series) (Features, error) {
	if len(window) < e.cfg.MinSamples {
		return Features{}, ErrInsufficientData
	}

	meanRR, sdnn, rmssd, pnn50, cv := timeDomain(window)
	spectral := e.Spectral(window)
	sd1, sd2 := Poincare(window)

	return Features{
		MeanRR:     meanRR,
		SDNN:       sdnn,
		RMSSD:      rmssd,
		PNN50:      pnn50,
		CV:         cv,
		LF:         spectral.LF,
		HF:         spectral.HF,
		LFHF:       spectral.LFHF,
		SD1:        sd1,
		SD2:        sd2,
		SI:         StressIndex(window),
		SpectralOK: spectral.Valid,
	}, nil
}
