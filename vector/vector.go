package vector

import (
	"fmt"
	"math"
)

// Vector is a dense float32 point.
type Vector []float32

// Magnitude returns the Euclidean norm of v.
func (v Vector) Magnitude() float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

// L2 returns the Euclidean distance between v and other.
func (v Vector) L2(other Vector) (float64, error) {
	if len(v) != len(other) {
		return 0, fmt.Errorf("vector: L2 distance dimension mismatch: %d vs %d", len(v), len(other))
	}
	return l2(v, other), nil
}

// Cosine returns the cosine similarity of v and other. Zero-magnitude and
// empty vectors are rejected.
func (v Vector) Cosine(other Vector) (float64, error) {
	if len(v) != len(other) {
		return 0, fmt.Errorf("vector: cosine similarity dimension mismatch: %d vs %d", len(v), len(other))
	}
	if len(v) == 0 {
		return 0, fmt.Errorf("vector: cosine similarity on empty vectors")
	}
	var dot, na2, nb2 float64
	for i := range v {
		a, b := float64(v[i]), float64(other[i])
		dot += a * b
		na2 += a * a
		nb2 += b * b
	}
	if na2 == 0 || nb2 == 0 {
		return 0, fmt.Errorf("vector: cosine similarity with zero-magnitude vector")
	}
	return dot / (math.Sqrt(na2) * math.Sqrt(nb2)), nil
}

func l2(a, b Vector) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

// L2Distance is Vector.L2 for plain slices.
func L2Distance(a, b []float32) (float64, error) {
	return Vector(a).L2(b)
}
