// Package interp provides interpolation over non-uniformly spaced samples,
// used to resample irregular series onto uniform grids.
//
// Two quality tiers are available:
//   - Linear: piecewise linear, needs 2 points
//   - Spline: natural cubic spline, needs 3 points, C2-continuous
//
// Both extrapolate beyond the knot range using their end segments.
package interp

import "math"

// Interpolator evaluates a fitted curve at arbitrary positions.
type Interpolator interface {
	At(x float64) float64
}

// Linear is a piecewise linear interpolant over strictly increasing knots.
type Linear struct {
	xs []float64
	ys []float64
}

// NewLinear fits a piecewise linear interpolant to the given knots.
func NewLinear(xs, ys []float64) (*Linear, error) {
	if err := validateKnots(xs, ys, 2); err != nil {
		return nil, err
	}

	return &Linear{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
	}, nil
}

// At evaluates the interpolant, extrapolating with the end segments.
func (l *Linear) At(x float64) float64 {
	i := segmentIndex(l.xs, x)
	x0, x1 := l.xs[i], l.xs[i+1]
	y0, y1 := l.ys[i], l.ys[i+1]

	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}

// Eval evaluates the interpolant at every grid position.
func (l *Linear) Eval(grid []float64) []float64 {
	return evalAll(l, grid)
}

// Spline is a natural cubic spline over strictly increasing knots.
// Second derivatives vanish at both ends; evaluation outside the knot
// range extrapolates with the first or last cubic segment.
type Spline struct {
	xs []float64
	ys []float64
	b  []float64
	c  []float64
	d  []float64
}

// NewSpline fits a natural cubic spline to the given knots.
func NewSpline(xs, ys []float64) (*Spline, error) {
	if err := validateKnots(xs, ys, 3); err != nil {
		return nil, err
	}

	n := len(xs)

	s := &Spline{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
		b:  make([]float64, n-1),
		c:  make([]float64, n-1),
		d:  make([]float64, n-1),
	}

	h := make([]float64, n-1)
	for i := range h {
		h[i] = xs[i+1] - xs[i]
	}

	// Second derivatives at the knots; natural boundary pins both ends
	// to zero, leaving a tridiagonal system for the interior.
	m := make([]float64, n)

	if n > 2 {
		diag := make([]float64, n-2)
		sup := make([]float64, n-2)
		rhs := make([]float64, n-2)

		for i := 1; i < n-1; i++ {
			k := i - 1
			diag[k] = 2 * (h[i-1] + h[i])
			sup[k] = h[i]
			rhs[k] = 6 * ((ys[i+1]-ys[i])/h[i] - (ys[i]-ys[i-1])/h[i-1])
		}

		// Thomas algorithm: forward elimination, back substitution.
		for k := 1; k < n-2; k++ {
			w := h[k] / diag[k-1]
			diag[k] -= w * sup[k-1]
			rhs[k] -= w * rhs[k-1]
		}

		m[n-2] = rhs[n-3] / diag[n-3]
		for k := n - 4; k >= 0; k-- {
			m[k+1] = (rhs[k] - sup[k]*m[k+2]) / diag[k]
		}
	}

	for i := 0; i < n-1; i++ {
		s.b[i] = (ys[i+1]-ys[i])/h[i] - h[i]*(2*m[i]+m[i+1])/6
		s.c[i] = m[i] / 2
		s.d[i] = (m[i+1] - m[i]) / (6 * h[i])
	}

	return s, nil
}

// At evaluates the spline, extrapolating with the end segments.
func (s *Spline) At(x float64) float64 {
	i := segmentIndex(s.xs, x)
	dx := x - s.xs[i]

	return s.ys[i] + dx*(s.b[i]+dx*(s.c[i]+dx*s.d[i]))
}

// Eval evaluates the spline at every grid position.
func (s *Spline) Eval(grid []float64) []float64 {
	return evalAll(s, grid)
}

// UniformGrid returns start, start+step, ... up to but excluding stop,
// matching half-open range semantics. Returns nil when the range is
// empty or step is not positive.
func UniformGrid(start, stop, step float64) []float64 {
	if step <= 0 || stop <= start {
		return nil
	}

	n := int(math.Ceil((stop - start) / step))
	if n <= 0 {
		return nil
	}

	grid := make([]float64, n)
	for i := range grid {
		grid[i] = start + float64(i)*step
	}

	return grid
}

// segmentIndex locates the knot segment containing x via binary search.
// Positions outside the knot range map to the first or last segment.
func segmentIndex(xs []float64, x float64) int {
	n := len(xs)
	if x <= xs[0] {
		return 0
	}

	if x >= xs[n-1] {
		return n - 2
	}

	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if xs[mid] <= x {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo
}

func evalAll(ip Interpolator, grid []float64) []float64 {
	if len(grid) == 0 {
		return nil
	}

	out := make([]float64, len(grid))
	for i, x := range grid {
		out[i] = ip.At(x)
	}

	return out
}
