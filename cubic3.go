package discretize

// CubicBez3 is a cubic Bézier curve in 3D space, parametrized over [0, 1].
type CubicBez3 struct {
	P0 Point3
	P1 Point3
	P2 Point3
	P3 Point3
}

var _ BoundedCurve = CubicBez3{}

func (cb CubicBez3) Eval(t float64) Point3 {
	mt := 1.0 - t
	a := Vec3(cb.P0).Mul(mt * mt * mt)
	b := Vec3(cb.P1).Mul(mt * mt * 3.0)
	c := Vec3(cb.P2).Mul(mt * 3.0)
	d := Vec3(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point3(v)
}

func (cb CubicBez3) Domain() (float64, float64) { return 0, 1 }
