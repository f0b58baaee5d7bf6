package vp

import (
	"fmt"

	"github.com/viant/colorvp/index"
	"github.com/viant/colorvp/vptree"
	"github.com/viant/vec/search"
)

// Index is a VP-tree backed nearest-neighbor index.
type Index struct {
	distance DistanceFunction
	seed     uint64
	ids      []string
	vecs     [][]float32
	dim      int
	tree     *vptree.Tree[item, float32]
}

var _ index.Index = (*Index)(nil)

// Build validates the dataset and constructs the tree.
func (i *Index) Build(ids []string, vectors [][]float32) error {
	fn, err := i.distance.function()
	if err != nil {
		return err
	}
	dim, err := index.Validate(ids, vectors)
	if err != nil {
		return fmt.Errorf("vp: %w", err)
	}
	i.ids = append([]string(nil), ids...)
	i.vecs = append([][]float32(nil), vectors...)
	i.dim = dim
	i.tree = nil
	if len(vectors) == 0 {
		return nil
	}
	items := make([]item, len(vectors))
	for j := range vectors {
		items[j] = item{pos: j, vector: search.Float32s(vectors[j])}
	}
	tree, err := vptree.Build(items, fn, vptree.WithSeed(i.seed))
	if err != nil {
		return fmt.Errorf("vp: %w", err)
	}
	i.tree = tree
	return nil
}

// Nearest returns the id closest to query and its Euclidean distance.
func (i *Index) Nearest(query []float32) (string, float64, error) {
	if i.tree == nil {
		return "", 0, index.ErrEmpty
	}
	if len(query) != i.dim {
		return "", 0, fmt.Errorf("vp: query dim %d != index dim %d", len(query), i.dim)
	}
	found, d := i.tree.NearestWithDistance(item{pos: -1, vector: query})
	return i.ids[found.pos], float64(d), nil
}

// Len returns the number of indexed vectors.
func (i *Index) Len() int { return len(i.ids) }

// Height returns the tree height, or -1 when empty.
func (i *Index) Height() int {
	if i.tree == nil {
		return -1
	}
	return i.tree.Height()
}

// MarshalBinary encodes the dataset; the tree itself is not persisted.
func (i *Index) MarshalBinary() ([]byte, error) {
	return index.Encode(i.dim, i.ids, i.vecs), nil
}

// UnmarshalBinary decodes the dataset and rebuilds the tree.
func (i *Index) UnmarshalBinary(data []byte) error {
	ids, vecs, err := index.Decode(data)
	if err != nil {
		return fmt.Errorf("vp: %w", err)
	}
	return i.Build(ids, vecs)
}
