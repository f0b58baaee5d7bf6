package index

import "errors"

// ErrEmpty is returned when querying an index built from no vectors.
var ErrEmpty = errors.New("index: empty")

// Index defines an exact nearest-neighbor index over Euclidean vectors.
// It is built from (id, vector) pairs, answers single nearest-neighbor
// queries, and serializes its dataset for persistence.
type Index interface {
	// Build constructs the index from the given ids and vectors.
	// ids and vectors must have the same length and vectors a common dimension.
	Build(ids []string, vectors [][]float32) error

	// Nearest returns the id of the vector closest to query and its
	// Euclidean distance. Ties resolve to the first vector found.
	Nearest(query []float32) (id string, distance float64, err error)

	// MarshalBinary serializes the dataset (see Encode).
	MarshalBinary() ([]byte, error)

	// UnmarshalBinary rebuilds the index from Encode output.
	UnmarshalBinary(data []byte) error
}
