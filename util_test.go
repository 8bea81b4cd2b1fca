package discretize

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var cmpAllowUnexported = cmp.AllowUnexported(config{})

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// checkAbscissas verifies that d starts at start, ends at end and is strictly
// increasing, and that its points match the curve.
func checkAbscissas(t *testing.T, c Curve, d *Discretization, start, end float64) {
	t.Helper()
	if d.Len() < 2 {
		t.Fatalf("got %d points, want at least 2", d.Len())
	}
	if d.Param(0) != start {
		t.Errorf("first abscissa is %v, want %v", d.Param(0), start)
	}
	if d.Param(d.Len()-1) != end {
		t.Errorf("last abscissa is %v, want %v", d.Param(d.Len()-1), end)
	}
	for i := 1; i < d.Len(); i++ {
		if !(d.Param(i) > d.Param(i-1)) {
			t.Fatalf("abscissa %d (%v) isn't above abscissa %d (%v)", i, d.Param(i), i-1, d.Param(i-1))
		}
	}
	for i := range d.Len() {
		if p := c.Eval(d.Param(i)); p != d.Point(i) {
			t.Fatalf("point %d is %v, curve evaluates to %v", i, d.Point(i), p)
		}
	}
}

func chords(d *Discretization) []float64 {
	out := make([]float64, 0, d.Len()-1)
	for seg := range d.Segments() {
		out = append(out, seg.Length())
	}
	return out
}

var (
	quarterCircle = CurveFunc(func(t float64) Point3 {
		return Pt(math.Cos(t), math.Sin(t), 0)
	})
	straightLine = CurveFunc(func(t float64) Point3 {
		return Pt(t, 0, 0)
	})
	spiral = CurveFunc(func(t float64) Point3 {
		return Pt(math.Cos(t), math.Sin(t), 0.2*t)
	})
	constant = CurveFunc(func(t float64) Point3 {
		return Pt(1, 2, 3)
	})
	testBez = CubicBez3{Pt(0, 0, 0), Pt(1, 2, 0), Pt(3, -1, 1), Pt(4, 1, 2)}
)
