// Package discretize resamples parametric 3D curves into polylines.
//
// A [Curve] is a black box that maps a parameter t to a [Point3]. A [Sampler]
// binds a curve to a parameter range [start, end] and produces a
// [Discretization]: a strictly increasing list of parameters, called
// abscissas, that starts at start and ends at end, together with the curve
// points at those parameters.
//
// # Fidelity criteria
//
// The sampler supports the following criteria:
//
//   - a maximum distance between consecutive points ([Sampler.DiscretizeMaxLength])
//   - an exact number of points ([Sampler.DiscretizeNPoints])
//   - a maximum deflection, absolute or relative to the segment length
//     ([Sampler.DiscretizeMaxDeflection])
//   - an explicit list of parameters ([Sampler.SetDiscretization]) or a uniform
//     split of the parameter range ([Sampler.Split])
//
// The first three don't know anything about the curve beyond point
// evaluation. They evaluate the curve at many equally spaced probes and walk
// the probes greedily, keeping a probe whenever the criterion is exceeded
// since the last kept one. If the walk keeps more than a tenth of the probes,
// the probes were too coarse for the walk to be a good approximation of the
// continuous problem, and the walk is repeated with ten times as many probes.
// For an exact point count, the length threshold is additionally bisected
// until the walk keeps the requested number of probes.
//
// # Smoothing
//
// The greedy walk produces a short last segment and segments that are all
// slightly longer than the threshold. A smoothing pass then moves interior
// points towards the longer of their two incident segments, accepting a move
// only when it reduces the imbalance, until no more moves are made. See
// [Sampler.Smooth] and [Criterion].
//
// # Local refinement
//
// Individual segments of a discretization can be refined without touching
// the rest of it, see [Sampler.SplitSubsegment],
// [Sampler.DiscretizeSubsegmentMaxLength] and
// [Sampler.DiscretizeSubsegmentMaxDeflection].
//
// # Termination
//
// Oversampling and bisection are bounded (see [WithMaxRefinements],
// [WithMaxBisections] and [WithMaxProbes]). Degenerate inputs, such as curves
// of zero length or point counts that the greedy walk cannot produce, fail
// with [ErrNonConvergence] instead of looping. Curves that evaluate to NaN or
// infinite points fail with [ErrInvalidArgument].
//
// # Curves
//
// Besides [CurveFunc], which adapts plain functions, the package provides a
// few curves that are useful on their own and in tests: [Line3], [CubicBez3],
// [Arc3], [Helix] and [Polyline3].
package discretize
