package vp

import "github.com/viant/colorvp/vptree"

// Option configures an Index.
type Option func(*Index)

// WithDistance selects the distance function; only Euclidean is accepted.
func WithDistance(d DistanceFunction) Option {
	return func(i *Index) { i.distance = d }
}

// WithSeed sets the tree construction seed.
func WithSeed(seed uint64) Option {
	return func(i *Index) { i.seed = seed }
}

// New creates an empty index.
func New(opts ...Option) *Index {
	ret := &Index{distance: DistanceFunctionEuclidean, seed: vptree.DefaultSeed}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
