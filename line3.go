package discretize

// Line3 is a straight line segment in 3D space, parametrized over [0, 1].
type Line3 struct {
	// The line's start point.
	P0 Point3
	// The line's end point.
	P1 Point3
}

var _ BoundedCurve = Line3{}
var _ Arclener = Line3{}

// Length returns the length of the line.
func (l Line3) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Arclen returns the length of the line.
func (l Line3) Arclen() float64 {
	return l.Length()
}

func (l Line3) Eval(t float64) Point3 {
	return l.P0.Lerp(l.P1, t)
}

func (l Line3) Domain() (float64, float64) { return 0, 1 }
