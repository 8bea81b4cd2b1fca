package discretize

import (
	"math"
)

// Arc3 is an elliptical arc in 3D space, parametrized over [0, 1].
//
// The arc lies in the plane spanned by U and V, which are the radius vectors
// at angles 0 and π/2. When U and V are orthogonal and of equal length the arc
// is circular.
type Arc3 struct {
	Center     Point3
	U          Vec3
	V          Vec3
	StartAngle float64
	SweepAngle float64
}

var _ BoundedCurve = Arc3{}

// CircleArc returns a circular arc of the given radius in the plane z = center.Z.
func CircleArc(center Point3, radius, startAngle, sweepAngle float64) Arc3 {
	return Arc3{
		Center:     center,
		U:          Vec(radius, 0, 0),
		V:          Vec(0, radius, 0),
		StartAngle: startAngle,
		SweepAngle: sweepAngle,
	}
}

func (a Arc3) Eval(t float64) Point3 {
	sin, cos := math.Sincos(a.StartAngle + t*a.SweepAngle)
	return a.Center.Translate(a.U.Mul(cos).Add(a.V.Mul(sin)))
}

func (a Arc3) Domain() (float64, float64) { return 0, 1 }

// Helix is a circular helix around an axis parallel to z, parametrized over [0, 1].
type Helix struct {
	Center Point3
	Radius float64
	// Rise along the axis per full turn.
	Pitch float64
	Turns float64
}

var _ BoundedCurve = Helix{}
var _ Arclener = Helix{}

func (h Helix) Eval(t float64) Point3 {
	th := 2 * math.Pi * h.Turns * t
	sin, cos := math.Sincos(th)
	return h.Center.Translate(Vec(h.Radius*cos, h.Radius*sin, h.Pitch*h.Turns*t))
}

func (h Helix) Domain() (float64, float64) { return 0, 1 }

// Arclen returns the exact length of the helix.
func (h Helix) Arclen() float64 {
	return h.Turns * math.Hypot(2*math.Pi*h.Radius, h.Pitch)
}
