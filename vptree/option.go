package vptree

// DefaultSeed seeds the construction PRNG when WithSeed is not used.
const DefaultSeed uint64 = 0

type options struct {
	seed uint64
}

// Option configures Build.
type Option func(*options)

// WithSeed overrides the seed used to pick vantage points and thresholds.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

func newOptions(opts []Option) *options {
	o := &options{seed: DefaultSeed}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}
