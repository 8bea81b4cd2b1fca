package discretize

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSplitSubsegment(t *testing.T) {
	s := NewSampler(straightLine, 0, 4)
	if _, err := s.Split(4); err != nil {
		t.Fatal(err)
	}
	d, err := s.SplitSubsegment(1, 4)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 1, 1.25, 1.5, 1.75, 2, 3, 4}
	diff(t, want, d.Params(), cmpopts.EquateApprox(0, 1e-12))
	checkAbscissas(t, straightLine, d, 0, 4)

	// The last segment is a valid index.
	d, err = s.SplitSubsegment(d.Len()-2, 2)
	if err != nil {
		t.Fatal(err)
	}
	want = []float64{0, 1, 1.25, 1.5, 1.75, 2, 3, 3.5, 4}
	diff(t, want, d.Params(), cmpopts.EquateApprox(0, 1e-12))
}

func TestDiscretizeSubsegmentMaxLength(t *testing.T) {
	s := NewSampler(spiral, 0, 4*math.Pi)
	parent, err := s.Split(3)
	if err != nil {
		t.Fatal(err)
	}
	child, err := NewSampler(spiral, parent.Param(1), parent.Param(2)).DiscretizeMaxLength(0.2)
	if err != nil {
		t.Fatal(err)
	}
	d, err := s.DiscretizeSubsegmentMaxLength(1, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	if want := parent.Len() + child.Len() - 2; d.Len() != want {
		t.Fatalf("got %d points, want %d", d.Len(), want)
	}
	checkAbscissas(t, spiral, d, 0, 4*math.Pi)
	diff(t, child.Params(), d.Params()[1:1+child.Len()])
	if d.Param(0) != parent.Param(0) || d.Param(d.Len()-1) != parent.Param(3) {
		t.Error("points outside the refined segment moved")
	}
	for i := 1; i < child.Len(); i++ {
		if l := d.Point(i + 1).Distance(d.Point(i)); l > 0.2*1.05 {
			t.Errorf("refined segment %d has length %v", i, l)
		}
	}
}

func TestDiscretizeSubsegmentMaxDeflection(t *testing.T) {
	c := CircleArc(Pt(0, 0, 0), 1, 0, 2*math.Pi)
	s := NewSamplerFor(c)
	if _, err := s.Split(2); err != nil {
		t.Fatal(err)
	}
	d, err := s.DiscretizeSubsegmentMaxDeflection(0, 0.001, false)
	if err != nil {
		t.Fatal(err)
	}
	checkAbscissas(t, c, d, 0, 1)
	if d.Len() <= 3 {
		t.Fatalf("got %d points, want more than 3", d.Len())
	}
	if d.Param(d.Len()-2) != 0.5 {
		t.Errorf("untouched segment starts at %v, want 0.5", d.Param(d.Len()-2))
	}
}

func TestSubsegmentErrors(t *testing.T) {
	s := NewSampler(quarterCircle, 0, 1)
	if _, err := s.SplitSubsegment(0, 2); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("without discretization: got error %v, want %v", err, ErrInvalidArgument)
	}
	d, err := s.Split(3)
	if err != nil {
		t.Fatal(err)
	}
	for _, i := range []int{-1, 3, 4} {
		if _, err := s.SplitSubsegment(i, 2); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("SplitSubsegment(%d): got error %v, want %v", i, err, ErrIndexOutOfRange)
		}
		if _, err := s.DiscretizeSubsegmentMaxLength(i, 0.1); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("DiscretizeSubsegmentMaxLength(%d): got error %v, want %v", i, err, ErrIndexOutOfRange)
		}
	}
	if _, err := s.DiscretizeSubsegmentMaxLength(1, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("child error: got %v, want %v", err, ErrInvalidArgument)
	}
	if _, err := s.SplitSubsegment(1, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("child error: got %v, want %v", err, ErrInvalidArgument)
	}
	if s.Discretization() != d {
		t.Error("failed refinement replaced the discretization")
	}
}
