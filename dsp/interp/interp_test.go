package interp

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestLinearAt(t *testing.T) {
	li, err := NewLinear([]float64{0, 1, 3}, []float64{0, 2, 6})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"knot", 1, 2},
		{"mid_first", 0.5, 1},
		{"mid_second", 2, 4},
		{"extrapolate_left", -1, -2},
		{"extrapolate_right", 4, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := li.At(tt.x)
			if !almostEqual(got, tt.want, 1e-12) {
				t.Errorf("At(%g) = %g, want %g", tt.x, got, tt.want)
			}
		})
	}
}

func TestSplineReproducesKnots(t *testing.T) {
	xs := []float64{0, 0.8, 1.7, 2.1, 3.0}
	ys := []float64{1.0, 2.0, 0.5, 1.5, 1.0}

	sp, err := NewSpline(xs, ys)
	if err != nil {
		t.Fatal(err)
	}

	for i, x := range xs {
		got := sp.At(x)
		if !almostEqual(got, ys[i], 1e-9) {
			t.Errorf("At(knot %d) = %g, want %g", i, got, ys[i])
		}
	}
}

func TestSplineGoldenUniform(t *testing.T) {
	sp, err := NewSpline([]float64{0, 1, 2, 3}, []float64{0, 1, 0, 1})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		x    float64
		want float64
	}{
		{0.5, 0.75},
		{1.5, 0.5},
		{-1, -1}, // left extrapolation via first segment
		{4, 2},   // right extrapolation via last segment
	}
	for _, tt := range tests {
		got := sp.At(tt.x)
		if !almostEqual(got, tt.want, 1e-9) {
			t.Errorf("At(%g) = %g, want %g", tt.x, got, tt.want)
		}
	}
}

func TestSplineGoldenNonUniform(t *testing.T) {
	sp, err := NewSpline(
		[]float64{0, 0.8, 1.7, 2.1, 3.0},
		[]float64{1.0, 2.0, 0.5, 1.5, 1.0},
	)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		x    float64
		want float64
	}{
		{0.4, 1.8552670404249039},
		{1.0, 1.6327366923003133},
		{1.9, 0.9511327497459097},
		{2.5, 1.7559466781295574},
		{-0.5, 0.014181912068456815},
		{3.5, 0.24405332187044415},
	}
	for _, tt := range tests {
		got := sp.At(tt.x)
		if !almostEqual(got, tt.want, 1e-9) {
			t.Errorf("At(%g) = %g, want %g", tt.x, got, tt.want)
		}
	}
}

func TestSplineLinearData(t *testing.T) {
	// A spline through collinear points must reproduce the line exactly,
	// including outside the knot range.
	sp, err := NewSpline([]float64{0, 1, 2, 3, 4}, []float64{1, 3, 5, 7, 9})
	if err != nil {
		t.Fatal(err)
	}

	for _, x := range []float64{0.25, 1.5, 3.9, -2, 6} {
		want := 1 + 2*x
		if got := sp.At(x); !almostEqual(got, want, 1e-9) {
			t.Errorf("At(%g) = %g, want %g", x, got, want)
		}
	}
}

func TestSplineThreeKnots(t *testing.T) {
	sp, err := NewSpline([]float64{0, 1, 2}, []float64{0, 1, 0})
	if err != nil {
		t.Fatal(err)
	}

	// Symmetric data: peak value reproduced, midpoints symmetric.
	if got := sp.At(1); !almostEqual(got, 1, 1e-12) {
		t.Errorf("At(1) = %g, want 1", got)
	}

	if l, r := sp.At(0.5), sp.At(1.5); !almostEqual(l, r, 1e-12) {
		t.Errorf("symmetry broken: At(0.5)=%g At(1.5)=%g", l, r)
	}
}

func TestEval(t *testing.T) {
	sp, err := NewSpline([]float64{0, 1, 2, 3}, []float64{0, 1, 0, 1})
	if err != nil {
		t.Fatal(err)
	}

	grid := []float64{0, 0.5, 1, 1.5}

	out := sp.Eval(grid)
	if len(out) != len(grid) {
		t.Fatalf("Eval returned %d values, want %d", len(out), len(grid))
	}

	for i, x := range grid {
		if !almostEqual(out[i], sp.At(x), 1e-12) {
			t.Errorf("Eval[%d] != At(%g)", i, x)
		}
	}

	if sp.Eval(nil) != nil {
		t.Error("Eval(nil) should be nil")
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		ys   []float64
	}{
		{"mismatch", []float64{0, 1}, []float64{0, 1, 2}},
		{"too_few", []float64{0, 1}, []float64{0, 1}},
		{"not_increasing", []float64{0, 2, 1}, []float64{0, 1, 2}},
		{"duplicate", []float64{0, 1, 1}, []float64{0, 1, 2}},
		{"nan_position", []float64{0, math.NaN(), 2}, []float64{0, 1, 2}},
		{"inf_value", []float64{0, 1, 2}, []float64{0, math.Inf(1), 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSpline(tt.xs, tt.ys); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}

	if _, err := NewLinear([]float64{0}, []float64{1}); err == nil {
		t.Error("linear with one knot should fail")
	}

	if _, err := NewLinear([]float64{0, 1}, []float64{1, 2}); err != nil {
		t.Errorf("linear with two knots should fit: %v", err)
	}
}

func TestUniformGrid(t *testing.T) {
	grid := UniformGrid(0, 1, 0.25)

	want := []float64{0, 0.25, 0.5, 0.75}
	if len(grid) != len(want) {
		t.Fatalf("got %d points, want %d", len(grid), len(want))
	}

	for i := range want {
		if !almostEqual(grid[i], want[i], 1e-12) {
			t.Errorf("grid[%d] = %g, want %g", i, grid[i], want[i])
		}
	}
}

func TestUniformGrid_Degenerate(t *testing.T) {
	if g := UniformGrid(1, 1, 0.25); g != nil {
		t.Errorf("empty range should be nil, got %v", g)
	}

	if g := UniformGrid(2, 1, 0.25); g != nil {
		t.Errorf("inverted range should be nil, got %v", g)
	}

	if g := UniformGrid(0, 1, 0); g != nil {
		t.Errorf("zero step should be nil, got %v", g)
	}
}

func TestUniformGrid_SpacingStable(t *testing.T) {
	// Positions are computed as start + i*step, not by accumulation,
	// so spacing stays exact over long grids.
	grid := UniformGrid(0, 300, 0.25)

	last := len(grid) - 1
	if !almostEqual(grid[last], 0.25*float64(last), 1e-12) {
		t.Errorf("grid[%d] = %g, want %g", last, grid[last], 0.25*float64(last))
	}
}
