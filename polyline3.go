package discretize

import (
	"math"
)

// Polyline3 is a piecewise linear curve through a sequence of points.
//
// The parameter of the i-th point is i, so the domain is [0, len(Points)-1].
// A Polyline3 with fewer than two points evaluates to its only point, or to
// the zero point when empty.
type Polyline3 struct {
	Points []Point3
}

var _ BoundedCurve = Polyline3{}
var _ Arclener = Polyline3{}

func (p Polyline3) Eval(t float64) Point3 {
	n := len(p.Points)
	switch {
	case n == 0:
		return Point3{}
	case n == 1 || t <= 0:
		return p.Points[0]
	case t >= float64(n-1):
		return p.Points[n-1]
	}
	i := int(math.Floor(t))
	return p.Points[i].Lerp(p.Points[i+1], t-float64(i))
}

func (p Polyline3) Domain() (float64, float64) {
	return 0, math.Max(0, float64(len(p.Points)-1))
}

// Arclen returns the sum of the lengths of the polyline's segments.
func (p Polyline3) Arclen() float64 {
	var l float64
	for i := 1; i < len(p.Points); i++ {
		l += p.Points[i].Distance(p.Points[i-1])
	}
	return l
}
