package discretize

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDiscretizationAccessors(t *testing.T) {
	s := NewSampler(straightLine, 0, 10)
	d, err := s.Split(5)
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 6 {
		t.Fatalf("got %d points, want 6", d.Len())
	}
	if d.Start() != 0 || d.End() != 10 {
		t.Errorf("got range [%v, %v], want [0, 10]", d.Start(), d.End())
	}
	if got := d.TotalLength(); math.Abs(got-10) > 1e-12 {
		t.Errorf("got total length %v, want 10", got)
	}

	params := d.Params()
	params[0] = 42
	pts := d.Points()
	pts[0] = Pt(42, 42, 42)
	if d.Param(0) != 0 || d.Point(0) != Pt(0, 0, 0) {
		t.Error("modifying copies changed the discretization")
	}

	var gotParams []float64
	var gotPoints []Point3
	for tt, p := range d.All() {
		gotParams = append(gotParams, tt)
		gotPoints = append(gotPoints, p)
	}
	diff(t, d.Params(), gotParams)
	diff(t, d.Points(), gotPoints)

	n := 0
	for seg := range d.Segments() {
		if l := seg.Length(); math.Abs(l-2) > 1e-12 {
			t.Errorf("segment %d has length %v, want 2", n, l)
		}
		n++
	}
	if n != 5 {
		t.Errorf("got %d segments, want 5", n)
	}
}

func TestDiscretizationSegmentAt(t *testing.T) {
	d, err := NewSampler(straightLine, 0, 10).Split(5)
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range []struct {
		t    float64
		want int
	}{
		{0, 0},
		{1.9, 0},
		{2, 1},
		{9.99, 4},
		{10, 4},
		{-0.1, -1},
		{10.1, -1},
		{math.NaN(), -1},
	} {
		if got := d.SegmentAt(tt.t); got != tt.want {
			t.Errorf("SegmentAt(%v) = %d, want %d", tt.t, got, tt.want)
		}
	}
}

func TestDiscretizationTotalLengthArc(t *testing.T) {
	d, err := NewSamplerFor(CircleArc(Pt(0, 0, 0), 1, 0, math.Pi/2)).DiscretizeNPoints(40)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, math.Pi/2, d.TotalLength(), cmpopts.EquateApprox(1e-3, 0))
	if d.TotalLength() > math.Pi/2 {
		t.Errorf("polyline length %v exceeds arc length", d.TotalLength())
	}
}
