package discretize

const (
	// DefaultMaxRefinements is the default number of oversampling attempts.
	// Each attempt uses ten times as many probes as the previous one.
	DefaultMaxRefinements = 5
	// DefaultMaxBisections is the default number of threshold halvings per
	// attempt in [Sampler.DiscretizeNPoints].
	DefaultMaxBisections = 100
	// DefaultArcSubdivisions is the default number of chords used to estimate
	// the arc length between two parameters.
	DefaultArcSubdivisions = 20
	// DefaultMaxProbes is the default upper bound on the number of probes a
	// single oversampling attempt may evaluate.
	DefaultMaxProbes = 10_000_000
)

// Option configures a [Sampler].
type Option func(*config)

type config struct {
	maxRefinements  int
	maxBisections   int
	arcSubdivisions int
	maxProbes       int
}

func newConfig(opts ...Option) config {
	cfg := config{
		maxRefinements:  DefaultMaxRefinements,
		maxBisections:   DefaultMaxBisections,
		arcSubdivisions: DefaultArcSubdivisions,
		maxProbes:       DefaultMaxProbes,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMaxRefinements bounds the number of oversampling attempts. It panics if
// n < 1.
func WithMaxRefinements(n int) Option {
	if n < 1 {
		panic("discretize: WithMaxRefinements(n < 1)")
	}
	return func(c *config) { c.maxRefinements = n }
}

// WithMaxBisections bounds the number of threshold halvings per oversampling
// attempt when searching for an exact point count. It panics if n < 1.
func WithMaxBisections(n int) Option {
	if n < 1 {
		panic("discretize: WithMaxBisections(n < 1)")
	}
	return func(c *config) { c.maxBisections = n }
}

// WithArcSubdivisions sets the number of chords used by
// [Sampler.ArcLength], and thus by deflection-based sampling and smoothing.
// It panics if n < 1.
func WithArcSubdivisions(n int) Option {
	if n < 1 {
		panic("discretize: WithArcSubdivisions(n < 1)")
	}
	return func(c *config) { c.arcSubdivisions = n }
}

// WithMaxProbes bounds the number of probes per oversampling attempt. A
// sampling method that would need more fails with [ErrNonConvergence]. It
// panics if n < 2.
func WithMaxProbes(n int) Option {
	if n < 2 {
		panic("discretize: WithMaxProbes(n < 2)")
	}
	return func(c *config) { c.maxProbes = n }
}
