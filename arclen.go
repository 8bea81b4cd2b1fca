package discretize

// ArcLength estimates the arc length of c between the parameters from and to.
//
// The range is divided into nsub equal steps and the lengths of the resulting
// chords are summed. The estimate never exceeds the true length and grows
// towards it when nsub is refined by an integer factor; it is exact for
// straight lines. from > to yields the same result as to..from, from == to
// yields 0, and nsub < 1 is treated as 1.
func ArcLength(c Curve, from, to float64, nsub int) float64 {
	if from == to {
		return 0
	}
	if from > to {
		from, to = to, from
	}
	nsub = max(nsub, 1)
	delta := (to - from) / float64(nsub)
	prev := c.Eval(from)
	var l float64
	for i := 1; i <= nsub; i++ {
		t := from + float64(i)*delta
		if i == nsub {
			// Avoid rounding errors
			t = to
		}
		p := c.Eval(t)
		l += p.Distance(prev)
		prev = p
	}
	return l
}

// ArcLength estimates the arc length of the sampler's curve between from and
// to, using the number of subdivisions configured with [WithArcSubdivisions].
func (s *Sampler) ArcLength(from, to float64) float64 {
	return ArcLength(s.curve, from, to, s.cfg.arcSubdivisions)
}
