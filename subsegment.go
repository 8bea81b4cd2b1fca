package discretize

import (
	"fmt"
)

// SplitSubsegment replaces segment i of the current discretization, the
// interval [Param(i), Param(i+1)], with n intervals of equal parameter
// length. The discretization grows by n-1 points.
func (s *Sampler) SplitSubsegment(i, n int) (*Discretization, error) {
	return s.refine("SplitSubsegment", i, func(child *Sampler) (*Discretization, error) {
		return child.Split(n)
	})
}

// DiscretizeSubsegmentMaxLength rediscretizes segment i of the current
// discretization as [Sampler.DiscretizeMaxLength] would, leaving all other
// points in place.
func (s *Sampler) DiscretizeSubsegmentMaxLength(i int, maxLen float64) (*Discretization, error) {
	return s.refine("DiscretizeSubsegmentMaxLength", i, func(child *Sampler) (*Discretization, error) {
		return child.DiscretizeMaxLength(maxLen)
	})
}

// DiscretizeSubsegmentMaxDeflection rediscretizes segment i of the current
// discretization as [Sampler.DiscretizeMaxDeflection] would, leaving all other
// points in place.
func (s *Sampler) DiscretizeSubsegmentMaxDeflection(i int, defl float64, relative bool) (*Discretization, error) {
	return s.refine("DiscretizeSubsegmentMaxDeflection", i, func(child *Sampler) (*Discretization, error) {
		return child.DiscretizeMaxDeflection(defl, relative)
	})
}

// refine discretizes segment i with a child sampler over that segment and
// splices the child's points in place of the segment's two endpoints.
func (s *Sampler) refine(method string, i int, run func(child *Sampler) (*Discretization, error)) (*Discretization, error) {
	if s.cur == nil {
		return nil, fmt.Errorf("%s: no discretization: %w", method, ErrInvalidArgument)
	}
	nr := s.cur.Len()
	if i < 0 || i >= nr-1 {
		return nil, fmt.Errorf("%s(%d): %d segments: %w", method, i, nr-1, ErrIndexOutOfRange)
	}
	child := &Sampler{
		curve: s.curve,
		start: s.cur.params[i],
		end:   s.cur.params[i+1],
		cfg:   s.cfg,
	}
	sub, err := run(child)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", method, i, err)
	}

	params := make([]float64, 0, nr+sub.Len()-2)
	params = append(params, s.cur.params[:i]...)
	params = append(params, sub.params...)
	params = append(params, s.cur.params[i+2:]...)
	pts := make([]Point3, 0, nr+sub.Len()-2)
	pts = append(pts, s.cur.points[:i]...)
	pts = append(pts, sub.points...)
	pts = append(pts, s.cur.points[i+2:]...)

	Logger().Debug("discretize: splice",
		"method", method, "segment", i, "points", nr, "inserted", sub.Len()-2)
	s.cur = newDiscretization(params, pts)
	return s.cur, nil
}
