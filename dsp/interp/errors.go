package interp

import (
	"errors"
	"fmt"
	"math"
)

var errLengthMismatch = errors.New("knot positions and values must have same length")

func validateKnots(xs, ys []float64, minPoints int) error {
	if len(xs) != len(ys) {
		return errLengthMismatch
	}

	if len(xs) < minPoints {
		return fmt.Errorf("need at least %d knots: %d", minPoints, len(xs))
	}

	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("knot position %d is not finite: %v", i, x)
		}

		if i > 0 && x <= xs[i-1] {
			return fmt.Errorf("knot positions must be strictly increasing: x[%d]=%v, x[%d]=%v", i-1, xs[i-1], i, x)
		}
	}

	for i, y := range ys {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return fmt.Errorf("knot value %d is not finite: %v", i, y)
		}
	}

	return nil
}
