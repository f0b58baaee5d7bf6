package vptree

// Distance enumerates the numeric types a metric may return. Unsigned types
// are excluded because pruning bounds are computed by subtraction.
type Distance interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// DistanceFunc computes the distance between two points.
type DistanceFunc[T any, D Distance] func(a, b T) D
