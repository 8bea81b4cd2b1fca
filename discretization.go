package discretize

import (
	"iter"
	"slices"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// Discretization is an ordered list of curve parameters, called abscissas,
// together with the curve points at those parameters.
//
// The abscissas are strictly increasing, and the first and last equal the
// start and end of the range that was discretized. A Discretization is
// immutable and safe for concurrent use.
//
// Indices are 0-based: Param(0) is the start of the range and
// Param(Len()-1) is its end.
type Discretization struct {
	params []float64
	points []Point3

	lengthOnce sync.Once
	length     float64
}

// newDiscretization takes ownership of params and points.
func newDiscretization(params []float64, points []Point3) *Discretization {
	return &Discretization{params: params, points: points}
}

// Len returns the number of points.
func (d *Discretization) Len() int {
	return len(d.params)
}

// Param returns the i-th abscissa.
func (d *Discretization) Param(i int) float64 {
	return d.params[i]
}

// Params returns a copy of all abscissas.
func (d *Discretization) Params() []float64 {
	return slices.Clone(d.params)
}

// Point returns the curve point at the i-th abscissa.
func (d *Discretization) Point(i int) Point3 {
	return d.points[i]
}

// Points returns a copy of all points.
func (d *Discretization) Points() []Point3 {
	return slices.Clone(d.points)
}

func (d *Discretization) Start() float64 { return d.params[0] }
func (d *Discretization) End() float64   { return d.params[len(d.params)-1] }

// TotalLength returns the length of the polyline through all points. It is
// computed on first use and cached.
func (d *Discretization) TotalLength() float64 {
	d.lengthOnce.Do(func() {
		if len(d.points) < 2 {
			return
		}
		segs := make([]float64, len(d.points)-1)
		for i := range segs {
			segs[i] = d.points[i+1].Distance(d.points[i])
		}
		d.length = floats.SumCompensated(segs)
	})
	return d.length
}

// All returns an iterator over (abscissa, point) pairs in order.
func (d *Discretization) All() iter.Seq2[float64, Point3] {
	return func(yield func(float64, Point3) bool) {
		for i, t := range d.params {
			if !yield(t, d.points[i]) {
				return
			}
		}
	}
}

// Segments returns an iterator over the polyline's segments.
func (d *Discretization) Segments() iter.Seq[Line3] {
	return func(yield func(Line3) bool) {
		for i := 1; i < len(d.points); i++ {
			if !yield(Line3{d.points[i-1], d.points[i]}) {
				return
			}
		}
	}
}

// SegmentAt returns the index i of the segment [Param(i), Param(i+1)] that
// contains t, or -1 if t lies outside the discretized range. The end of the
// range belongs to the last segment.
func (d *Discretization) SegmentAt(t float64) int {
	n := len(d.params)
	if n < 2 {
		return -1
	}
	if t == d.params[n-1] {
		return n - 2
	}
	return floats.Within(d.params, t)
}
