package welch

import (
	"errors"
	"fmt"
	"math"
)

var errZeroWindowPower = errors.New("window power is zero")

func validateInput(signal []float64, sampleRate float64) error {
	if len(signal) == 0 {
		return errors.New("signal must not be empty")
	}

	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("sample rate must be > 0: %f", sampleRate)
	}

	return nil
}

func validateSegment(seg int) error {
	return fmt.Errorf("segment length must be >= %d: %d", minAbsoluteLength, seg)
}

func validateStep(step int) error {
	return fmt.Errorf("segment step must be > 0: %d", step)
}
