package discretize

import (
	"errors"
)

// Sentinel errors returned by the sampling methods. Errors are wrapped with
// the failing method's name; use [errors.Is] to branch on them.
var (
	// ErrInvalidArgument reports a non-positive or non-finite threshold, a
	// point count below two, an empty or inverted parameter range, or a
	// parameter list that isn't strictly increasing.
	ErrInvalidArgument = errors.New("discretize: invalid argument")

	// ErrIndexOutOfRange reports a segment index outside [0, Len()-1).
	ErrIndexOutOfRange = errors.New("discretize: segment index out of range")

	// ErrNonConvergence reports that oversampling or bisection exhausted its
	// budget without meeting the requested criterion. The Sampler keeps its
	// previous discretization.
	ErrNonConvergence = errors.New("discretize: no convergence")
)
