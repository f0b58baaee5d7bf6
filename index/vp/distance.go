package vp

import (
	"errors"
	"fmt"

	"github.com/viant/vec/search"
)

// ErrNotMetric is returned when a distance function cannot prune a VP-tree.
var ErrNotMetric = errors.New("vp: distance is not a metric")

// DistanceFunction enumerates distance names accepted by WithDistance.
type DistanceFunction string

const (
	DistanceFunctionCosine    DistanceFunction = "cosine"
	DistanceFunctionEuclidean DistanceFunction = "euclidean"
)

// item is an indexed vector and its position in the original dataset.
type item struct {
	pos    int
	vector search.Float32s
}

func (d DistanceFunction) function() (func(a, b item) float32, error) {
	switch d {
	case DistanceFunctionEuclidean, "":
		return euclideanDistance, nil
	case DistanceFunctionCosine:
		return nil, fmt.Errorf("%w: %s", ErrNotMetric, d)
	default:
		return nil, fmt.Errorf("vp: unsupported distance %q", string(d))
	}
}

func euclideanDistance(a, b item) float32 {
	return a.vector.EuclideanDistance(b.vector)
}
