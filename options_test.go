package discretize

import (
	"errors"
	"math"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	cfg := newConfig()
	diff(t, config{
		maxRefinements:  DefaultMaxRefinements,
		maxBisections:   DefaultMaxBisections,
		arcSubdivisions: DefaultArcSubdivisions,
		maxProbes:       DefaultMaxProbes,
	}, cfg, cmpAllowUnexported)

	cfg = newConfig(WithMaxRefinements(2), WithMaxBisections(3), WithArcSubdivisions(4), WithMaxProbes(5), WithMaxRefinements(7))
	diff(t, config{maxRefinements: 7, maxBisections: 3, arcSubdivisions: 4, maxProbes: 5}, cfg, cmpAllowUnexported)
}

func TestOptionsPanic(t *testing.T) {
	for name, fn := range map[string]func(){
		"WithMaxRefinements":  func() { WithMaxRefinements(0) },
		"WithMaxBisections":   func() { WithMaxBisections(-1) },
		"WithArcSubdivisions": func() { WithArcSubdivisions(0) },
		"WithMaxProbes":       func() { WithMaxProbes(1) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s didn't panic", name)
				}
			}()
			fn()
		}()
	}
}

func TestMaxRefinementsBoundsProbes(t *testing.T) {
	var calls int
	c := CurveFunc(func(t float64) Point3 {
		calls++
		return Pt(t, 0, 0)
	})
	// A threshold this small can't be met with 101 probes.
	_, err := NewSampler(c, 0, 1, WithMaxRefinements(1)).DiscretizeMaxLength(1e-6)
	if err == nil {
		t.Fatal("expected an error")
	}
	if calls != 101 {
		t.Errorf("curve was evaluated %d times, want 101", calls)
	}
}

func TestMaxProbesBoundsProbes(t *testing.T) {
	var calls int
	c := CurveFunc(func(t float64) Point3 {
		calls++
		return Pt(t, 0, 0)
	})
	// 101 probes, then 1001, then the next attempt would exceed the limit.
	_, err := NewSampler(c, 0, 10, WithMaxRefinements(10), WithMaxProbes(1001)).DiscretizeMaxLength(1e-3)
	if !errors.Is(err, ErrNonConvergence) {
		t.Fatalf("got error %v, want %v", err, ErrNonConvergence)
	}
	if calls != 101+1001 {
		t.Errorf("curve was evaluated %d times, want %d", calls, 101+1001)
	}
}

func TestMaxProbesHugeCount(t *testing.T) {
	var calls int
	c := CurveFunc(func(t float64) Point3 {
		calls++
		return Pt(t, 0, 0)
	})
	s := NewSampler(c, 0, 1)
	for _, n := range []int{DefaultMaxProbes, math.MaxInt / 5, math.MaxInt} {
		if _, err := s.DiscretizeNPoints(n); !errors.Is(err, ErrNonConvergence) {
			t.Errorf("n=%d: got error %v, want %v", n, err, ErrNonConvergence)
		}
	}
	if calls != 0 {
		t.Errorf("curve was evaluated %d times, want 0", calls)
	}
}
