package discretize

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Sampler discretizes a curve over a fixed parameter range.
//
// Every sampling method replaces the sampler's current [Discretization] on
// success and leaves it untouched on failure. Discretizations returned by
// earlier calls remain valid.
//
// A Sampler is not safe for concurrent use. Distinct Samplers share no state
// and may run in parallel, even on the same Curve if its Eval is safe for
// concurrent use.
type Sampler struct {
	curve Curve
	start float64
	end   float64
	cfg   config

	// Scratch space reused across oversampling attempts.
	probes []float64
	xyz    []Point3
	keep   []int

	cur *Discretization
}

// NewSampler returns a sampler for c over the parameter range [start, end].
func NewSampler(c Curve, start, end float64, opts ...Option) *Sampler {
	return &Sampler{
		curve: c,
		start: start,
		end:   end,
		cfg:   newConfig(opts...),
	}
}

// NewSamplerFor returns a sampler for c over its whole domain.
func NewSamplerFor(c BoundedCurve, opts ...Option) *Sampler {
	start, end := c.Domain()
	return NewSampler(c, start, end, opts...)
}

func (s *Sampler) Curve() Curve { return s.curve }

// Range returns the parameter range the sampler discretizes.
func (s *Sampler) Range() (start, end float64) { return s.start, s.end }

// Discretization returns the current discretization, or nil if no sampling
// method has succeeded yet.
func (s *Sampler) Discretization() *Discretization { return s.cur }

func (s *Sampler) checkRange(method string) error {
	if !(s.start < s.end) || math.IsInf(s.start, 0) || math.IsInf(s.end, 0) {
		return fmt.Errorf("%s: range [%g, %g]: %w", method, s.start, s.end, ErrInvalidArgument)
	}
	return nil
}

func validThreshold(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// refineProbes returns ten times nsegments, or false if that would exceed the
// probe limit.
func (s *Sampler) refineProbes(nsegments int) (int, bool) {
	if nsegments > (s.cfg.maxProbes-1)/10 {
		return nsegments, false
	}
	return nsegments * 10, true
}

// sample evaluates the curve at nsegments+1 equally spaced parameters.
func (s *Sampler) sample(method string, nsegments int) error {
	s.probes = slices.Grow(s.probes[:0], nsegments+1)[:nsegments+1]
	floats.Span(s.probes, s.start, s.end)
	// Avoid rounding errors
	s.probes[nsegments] = s.end
	s.xyz = slices.Grow(s.xyz[:0], nsegments+1)[:nsegments+1]
	for i, t := range s.probes {
		p := s.curve.Eval(t)
		if p.IsNaN() || p.IsInf() {
			return nonFinite(method, t, p)
		}
		s.xyz[i] = p
	}
	return nil
}

func nonFinite(method string, t float64, p Point3) error {
	return fmt.Errorf("%s: curve evaluates to %v at t=%g: %w", method, p, t, ErrInvalidArgument)
}

// walkLength greedily keeps probes whose distance from the last kept probe
// exceeds maxLen. The first and last probes are always kept.
func (s *Sampler) walkLength(maxLen float64) []int {
	n := len(s.probes) - 1
	keep := append(s.keep[:0], 0)
	last := s.xyz[0]
	for i := 1; i < n; i++ {
		if s.xyz[i].Distance(last) > maxLen {
			keep = append(keep, i)
			last = s.xyz[i]
		}
	}
	keep = append(keep, n)
	s.keep = keep
	return keep
}

// walkDeflection greedily keeps probes where the arc length accumulated since
// the last kept probe exceeds the chord to it by more than defl, or by more
// than defl times the arc length if relative is set.
func (s *Sampler) walkDeflection(defl float64, relative bool) []int {
	n := len(s.probes) - 1
	keep := append(s.keep[:0], 0)
	last := s.xyz[0]
	arc := 0.0
	for i := 1; i < n; i++ {
		chord := s.xyz[i].Distance(last)
		arc += s.ArcLength(s.probes[i-1], s.probes[i])
		dmax := defl
		if relative {
			dmax *= arc
		}
		if arc-chord > dmax {
			keep = append(keep, i)
			last = s.xyz[i]
			arc = 0
		}
	}
	keep = append(keep, n)
	s.keep = keep
	return keep
}

// gather copies the kept probes into freshly allocated slices.
func (s *Sampler) gather(keep []int) ([]float64, []Point3) {
	a := make([]float64, len(keep))
	pts := make([]Point3, len(keep))
	for i, k := range keep {
		a[i] = s.probes[k]
		pts[i] = s.xyz[k]
	}
	return a, pts
}

// oversample runs walk on successively finer probe sets until the walk keeps
// fewer than a tenth of the probes.
func (s *Sampler) oversample(method string, walk func() []int) ([]float64, []Point3, error) {
	nsegments := 10
	nr := 0
	for range s.cfg.maxRefinements {
		var ok bool
		if nsegments, ok = s.refineProbes(nsegments); !ok {
			s.warnProbeLimit(method, nr)
			return nil, nil, fmt.Errorf("%s: %d points when reaching the limit of %d probes: %w",
				method, nr, s.cfg.maxProbes, ErrNonConvergence)
		}
		if err := s.sample(method, nsegments); err != nil {
			return nil, nil, err
		}
		keep := walk()
		nr = len(keep)
		Logger().Debug("discretize: oversampling attempt",
			"method", method, "probes", nsegments+1, "points", nr)
		// Stop when there are at least 10 probes per segment
		if nr*10 < nsegments {
			a, pts := s.gather(keep)
			return a, pts, nil
		}
	}
	Logger().Warn("discretize: refinement budget exhausted",
		"method", method, "probes", nsegments+1, "points", nr)
	return nil, nil, fmt.Errorf("%s: %d points from %d probes after %d refinements: %w",
		method, nr, nsegments+1, s.cfg.maxRefinements, ErrNonConvergence)
}

func (s *Sampler) warnProbeLimit(method string, nr int) {
	Logger().Warn("discretize: probe limit reached",
		"method", method, "limit", s.cfg.maxProbes, "points", nr)
}

// DiscretizeMaxLength discretizes the curve so that consecutive points are
// roughly maxLen apart. The initial greedy walk leaves segments just longer
// than maxLen; smoothing then balances neighbouring segment lengths.
func (s *Sampler) DiscretizeMaxLength(maxLen float64) (*Discretization, error) {
	const method = "DiscretizeMaxLength"
	if err := s.checkRange(method); err != nil {
		return nil, err
	}
	if !validThreshold(maxLen) {
		return nil, fmt.Errorf("%s(%g): %w", method, maxLen, ErrInvalidArgument)
	}
	a, pts, err := s.oversample(method, func() []int { return s.walkLength(maxLen) })
	if err != nil {
		return nil, err
	}
	s.smooth(a, pts, LengthCriterion)
	s.cur = newDiscretization(a, pts)
	return s.cur, nil
}

// DiscretizeNPoints discretizes the curve into exactly n points with roughly
// equal distances between consecutive points.
//
// For every probe set, the length threshold of the greedy walk is bisected
// until the walk keeps exactly n probes. Some counts are unreachable for a
// given curve, because the number of kept probes can jump by more than one
// as the threshold varies; this is reported as [ErrNonConvergence].
func (s *Sampler) DiscretizeNPoints(n int) (*Discretization, error) {
	const method = "DiscretizeNPoints"
	if err := s.checkRange(method); err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, fmt.Errorf("%s(%d): %w", method, n, ErrInvalidArgument)
	}
	if n == 2 {
		a := []float64{s.start, s.end}
		pts, err := s.evalAll(method, a)
		if err != nil {
			return nil, err
		}
		s.cur = newDiscretization(a, pts)
		return s.cur, nil
	}

	nsegments := n
	closest := 0
	for range s.cfg.maxRefinements {
		var ok bool
		if nsegments, ok = s.refineProbes(nsegments); !ok {
			s.warnProbeLimit(method, closest)
			return nil, fmt.Errorf("%s(%d): closest count %d when reaching the limit of %d probes: %w",
				method, n, closest, s.cfg.maxProbes, ErrNonConvergence)
		}
		if err := s.sample(method, nsegments); err != nil {
			return nil, err
		}
		var total float64
		for i := 1; i <= nsegments; i++ {
			total += s.xyz[i].Distance(s.xyz[i-1])
		}
		if total == 0 {
			// More probes can't separate points on a curve of zero length.
			Logger().Warn("discretize: zero-length curve", "method", method, "want", n)
			return nil, fmt.Errorf("%s(%d): curve has zero length: %w", method, n, ErrNonConvergence)
		}
		delta := (s.end - s.start) / float64(nsegments)

		// The number of kept probes doesn't increase with the threshold.
		lmin, lmax := 0.0, 2.0*total/float64(n)
		var keep []int
		for range s.cfg.maxBisections {
			maxLen := 0.5 * (lmin + lmax)
			keep = s.walkLength(maxLen)
			if len(keep) == n {
				break
			} else if len(keep) < n {
				lmax = maxLen
			} else {
				lmin = maxLen
			}
			if lmax-lmin < 0.5*delta {
				break
			}
		}
		Logger().Debug("discretize: oversampling attempt",
			"method", method, "probes", nsegments+1, "points", len(keep), "want", n)
		if len(keep) == n {
			a, pts := s.gather(keep)
			s.smooth(a, pts, LengthCriterion)
			s.cur = newDiscretization(a, pts)
			return s.cur, nil
		}
		if closest == 0 || absInt(len(keep)-n) < absInt(closest-n) {
			closest = len(keep)
		}
	}
	Logger().Warn("discretize: refinement budget exhausted",
		"method", method, "want", n, "closest", closest)
	return nil, fmt.Errorf("%s(%d): closest count %d after %d refinements: %w",
		method, n, closest, s.cfg.maxRefinements, ErrNonConvergence)
}

// DiscretizeMaxDeflection discretizes the curve so that the arc length of
// every segment exceeds its chord by roughly defl, or by roughly defl times
// the arc length if relative is set.
func (s *Sampler) DiscretizeMaxDeflection(defl float64, relative bool) (*Discretization, error) {
	const method = "DiscretizeMaxDeflection"
	if err := s.checkRange(method); err != nil {
		return nil, err
	}
	if !validThreshold(defl) {
		return nil, fmt.Errorf("%s(%g): %w", method, defl, ErrInvalidArgument)
	}
	// Worst case deviation between chord and arc under linear interpolation.
	defl *= math.Sqrt2
	a, pts, err := s.oversample(method, func() []int { return s.walkDeflection(defl, relative) })
	if err != nil {
		return nil, err
	}
	s.smooth(a, pts, DeflectionCriterion)
	s.cur = newDiscretization(a, pts)
	return s.cur, nil
}

// SetDiscretization uses params as the discretization. params must hold at
// least two strictly increasing values, starting and ending at the sampler's
// range. No smoothing takes place.
func (s *Sampler) SetDiscretization(params []float64) (*Discretization, error) {
	const method = "SetDiscretization"
	if err := s.checkRange(method); err != nil {
		return nil, err
	}
	if len(params) < 2 {
		return nil, fmt.Errorf("%s: %d parameters: %w", method, len(params), ErrInvalidArgument)
	}
	if params[0] != s.start || params[len(params)-1] != s.end {
		return nil, fmt.Errorf("%s: parameters span [%g, %g], range is [%g, %g]: %w",
			method, params[0], params[len(params)-1], s.start, s.end, ErrInvalidArgument)
	}
	for i := 1; i < len(params); i++ {
		if !(params[i] > params[i-1]) {
			return nil, fmt.Errorf("%s: parameter %d (%g) not above its predecessor: %w",
				method, i, params[i], ErrInvalidArgument)
		}
	}
	a := slices.Clone(params)
	pts, err := s.evalAll(method, a)
	if err != nil {
		return nil, err
	}
	s.cur = newDiscretization(a, pts)
	return s.cur, nil
}

// Split divides the range into n intervals of equal parameter length. No
// smoothing takes place.
func (s *Sampler) Split(n int) (*Discretization, error) {
	const method = "Split"
	if err := s.checkRange(method); err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("%s(%d): %w", method, n, ErrInvalidArgument)
	}
	a := floats.Span(make([]float64, n+1), s.start, s.end)
	// Avoid rounding errors
	a[n] = s.end
	pts, err := s.evalAll(method, a)
	if err != nil {
		return nil, err
	}
	s.cur = newDiscretization(a, pts)
	return s.cur, nil
}

func (s *Sampler) evalAll(method string, a []float64) ([]Point3, error) {
	pts := make([]Point3, len(a))
	for i, t := range a {
		p := s.curve.Eval(t)
		if p.IsNaN() || p.IsInf() {
			return nil, nonFinite(method, t, p)
		}
		pts[i] = p
	}
	return pts, nil
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
