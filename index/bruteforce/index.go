package bruteforce

import (
	"fmt"
	"math"

	"github.com/viant/colorvp/index"
	"github.com/viant/vec/search"
)

// Index is a brute-force Euclidean nearest-neighbor index.
type Index struct {
	ids  []string
	vecs []search.Float32s
	dim  int
}

var _ index.Index = (*Index)(nil)

// Build loads ids and vectors.
func (i *Index) Build(ids []string, vectors [][]float32) error {
	dim, err := index.Validate(ids, vectors)
	if err != nil {
		return fmt.Errorf("bruteforce: %w", err)
	}
	vecs := make([]search.Float32s, len(vectors))
	for j := range vectors {
		vecs[j] = search.Float32s(vectors[j])
	}
	i.ids = append([]string(nil), ids...)
	i.vecs = vecs
	i.dim = dim
	return nil
}

// Nearest scans every vector; the first minimum wins.
func (i *Index) Nearest(query []float32) (string, float64, error) {
	if len(i.vecs) == 0 {
		return "", 0, index.ErrEmpty
	}
	if len(query) != i.dim {
		return "", 0, fmt.Errorf("bruteforce: query dim %d != index dim %d", len(query), i.dim)
	}
	// seeded from the first vector: every distance may overflow to +Inf
	best, bestDist := 0, i.vecs[0].EuclideanDistance(query)
	for j := 1; j < len(i.vecs); j++ {
		d := i.vecs[j].EuclideanDistance(query)
		if d < bestDist || (math.IsNaN(float64(bestDist)) && !math.IsNaN(float64(d))) {
			best, bestDist = j, d
		}
	}
	return i.ids[best], float64(bestDist), nil
}

// Len returns the number of indexed vectors.
func (i *Index) Len() int { return len(i.ids) }

// MarshalBinary encodes the dataset.
func (i *Index) MarshalBinary() ([]byte, error) {
	vecs := make([][]float32, len(i.vecs))
	for j := range i.vecs {
		vecs[j] = i.vecs[j]
	}
	return index.Encode(i.dim, i.ids, vecs), nil
}

// UnmarshalBinary restores the index from bytes.
func (i *Index) UnmarshalBinary(data []byte) error {
	ids, vecs, err := index.Decode(data)
	if err != nil {
		return fmt.Errorf("bruteforce: %w", err)
	}
	return i.Build(ids, vecs)
}
