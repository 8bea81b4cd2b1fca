package discretize

// Curve describes a parametric curve in 3D space.
//
// The sampling algorithms treat a Curve as a black box: they know nothing about
// its analytic form and only ever call Eval. Eval must be a pure function of
// its argument; evaluating the same parameter twice must yield the same point.
// Eval may be expensive, and a single discretization can call it several
// hundred thousand times.
type Curve interface {
	Eval(t float64) Point3
}

// BoundedCurve is an optional interface implemented by curves that have a
// natural parameter range, such as [0, 1] for Bézier curves.
type BoundedCurve interface {
	Curve
	// Domain returns the start and end of the curve's parameter range.
	Domain() (start, end float64)
}

// Arclener is an optional interface implemented by curves that know their
// exact arc length over their whole domain.
type Arclener interface {
	Arclen() float64
}

// CurveFunc adapts an ordinary function to the [Curve] interface.
type CurveFunc func(t float64) Point3

var _ Curve = CurveFunc(nil)

// Eval implements [Curve].
func (fn CurveFunc) Eval(t float64) Point3 {
	return fn(t)
}
