package discretize

import (
	"fmt"
	"math"
)

// Criterion selects the quantity that smoothing balances between the two
// segments incident to each interior point.
type Criterion int

const (
	// LengthCriterion balances the chord lengths of neighbouring segments.
	LengthCriterion Criterion = iota
	// DeflectionCriterion balances the relative amount by which the arc
	// length of neighbouring segments exceeds their chord length.
	DeflectionCriterion
)

func (c Criterion) String() string {
	switch c {
	case LengthCriterion:
		return "length"
	case DeflectionCriterion:
		return "deflection"
	default:
		return fmt.Sprintf("Criterion(%d)", int(c))
	}
}

// Smooth moves the interior abscissas of the current discretization to
// balance neighbouring segments under criterion c, and returns the number of
// moves that were made. A discretization on which smoothing converged is a
// fixed point: smoothing it again makes no moves.
func (s *Sampler) Smooth(c Criterion) (int, error) {
	const method = "Smooth"
	if c != LengthCriterion && c != DeflectionCriterion {
		return 0, fmt.Errorf("%s(%v): %w", method, c, ErrInvalidArgument)
	}
	if s.cur == nil {
		return 0, fmt.Errorf("%s: no discretization: %w", method, ErrInvalidArgument)
	}
	a, pts := s.cur.Params(), s.cur.Points()
	moves := s.smooth(a, pts, c)
	if moves > 0 {
		s.cur = newDiscretization(a, pts)
	}
	return moves, nil
}

// smooth adjusts a and pts in place. It sweeps over the interior points,
// alternating direction, until a sweep makes no move or 2*len(a) sweeps have
// been made.
func (s *Sampler) smooth(a []float64, pts []Point3, c Criterion) int {
	nr := len(a)
	moves := 0
	sweeps := 0
	backward := false
	for range 2 * nr {
		sweeps++
		backward = !backward
		redo := false
		if backward {
			for i := nr - 2; i > 0; i-- {
				if s.move(a, pts, i, c) {
					redo = true
					moves++
				}
			}
		} else {
			for i := 1; i < nr-1; i++ {
				if s.move(a, pts, i, c) {
					redo = true
					moves++
				}
			}
		}
		if !redo {
			break
		}
	}
	Logger().Debug("discretize: smoothing",
		"criterion", c, "points", nr, "sweeps", sweeps, "moves", moves)
	return moves
}

// move tries to move the i-th point towards the longer of its two segments.
// The move is kept only if it reduces the discrepancy between them.
func (s *Sampler) move(a []float64, pts []Point3, i int, c Criterion) bool {
	prev, next := pts[i-1], pts[i+1]
	l1 := pts[i].Distance(prev)
	l2 := pts[i].Distance(next)
	if l1+l2 == 0 {
		return false
	}
	delta, limit := s.discrepancy(c, a[i-1], a[i], a[i+1], l1, l2)
	if !(delta > limit) {
		return false
	}

	t := a[i] + 0.8*(a[i+1]-a[i-1])*(l2-l1)/(l1+l2)
	if !(t > a[i-1] && t < a[i+1]) {
		return false
	}
	p := s.curve.Eval(t)
	newDelta, _ := s.discrepancy(c, a[i-1], t, a[i+1], p.Distance(prev), p.Distance(next))
	if newDelta < delta {
		a[i] = t
		pts[i] = p
		return true
	}
	return false
}

// discrepancy returns the imbalance between the segments [t0, t] and [t, t1],
// whose chords have lengths l1 and l2, and the limit above which the point at
// t should move. Degenerate segments yield a NaN imbalance, which neither
// exceeds the limit nor compares smaller than anything.
func (s *Sampler) discrepancy(c Criterion, t0, t, t1, l1, l2 float64) (delta, limit float64) {
	switch c {
	case DeflectionCriterion:
		a1 := s.ArcLength(t0, t)
		a2 := s.ArcLength(t, t1)
		if a1 <= 0 || a2 <= 0 {
			return math.NaN(), 0
		}
		d1 := (a1 - l1) / a1
		d2 := (a2 - l2) / a2
		d3 := (a1 + a2 - l1 - l2) / (a1 + a2)
		return math.Abs(d2 - d1), 0.05 * d3
	default:
		return math.Abs(l2 - l1), 0.05 * (l1 + l2)
	}
}
