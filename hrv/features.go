package hrv

import "fmt"

// Features is one extracted feature record. All values are finite; zero
// is the designated sentinel for undefined frequency and ratio fields.
type Features struct {
	MeanRR float64 // mean RR interval, ms
	SDNN   float64 // sample standard deviation, ms
	RMSSD  float64 // RMS of successive differences, ms
	PNN50  float64 // successive differences over 50 ms, percent
	CV     float64 // coefficient of variation, percent
	LF     float64 // 0.04-0.15 Hz band power
	HF     float64 // 0.15-0.40 Hz band power
	LFHF   float64 // LF/HF ratio, 0 when HF power is zero
	SD1    float64 // Poincaré short-term descriptor, ms
	SD2    float64 // Poincaré long-term descriptor, ms
	SI     float64 // Baevsky stress index

	// SpectralOK distinguishes measured frequency values from the zeros
	// substituted when spectral estimation failed on this window.
	SpectralOK bool
}

// FeatureNames lists the record schema in output order.
func FeatureNames() []string {
	return []string{
		"mean_rr", "sdnn", "rmssd", "pnn50", "cv",
		"lf", "hf", "lf_hf", "sd1", "sd2", "si",
	}
}

// Values returns the feature values in [FeatureNames] order.
func (f Features) Values() []float64 {
	return []float64{
		f.MeanRR, f.SDNN, f.RMSSD, f.PNN50, f.CV,
		f.LF, f.HF, f.LFHF, f.SD1, f.SD2, f.SI,
	}
}

// FeaturesFromValues builds a record from values in [FeatureNames]
// order. SpectralOK is not part of the value schema and is left false.
func FeaturesFromValues(vals []float64) (Features, error) {
	if len(vals) != len(FeatureNames()) {
		return Features{}, fmt.Errorf("hrv: need %d values, got %d", len(FeatureNames()), len(vals))
	}

	return Features{
		MeanRR: vals[0], SDNN: vals[1], RMSSD: vals[2], PNN50: vals[3], CV: vals[4],
		LF: vals[5], HF: vals[6], LFHF: vals[7], SD1: vals[8], SD2: vals[9], SI: vals[10],
	}, nil
}

// HeartRate returns the mean heart rate in beats per minute, or 0 for a
// zero mean interval.
func (f Features) HeartRate() float64 {
	if f.MeanRR == 0 {
		return 0
	}

	return 60000 / f.MeanRR
}

// Column collects one named feature across all rows. Returns nil for an
// unknown name.
func Column(matrix []Features, name string) []float64 {
	idx := -1

	for i, n := range FeatureNames() {
		if n == name {
			idx = i
			break
		}
	}

	if idx < 0 {
		return nil
	}

	out := make([]float64, len(matrix))
	for i, row := range matrix {
		out[i] = row.Values()[idx]
	}

	return out
}
