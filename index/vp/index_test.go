package vp

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/viant/colorvp/index"
	"github.com/viant/colorvp/index/bruteforce"
)

func randomDataset(rng *rand.Rand, n, dim int) ([]string, [][]float32) {
	ids := make([]string, n)
	vecs := make([][]float32, n)
	for i := range vecs {
		ids[i] = fmt.Sprintf("v%d", i)
		vec := make([]float32, dim)
		for j := range vec {
			vec[j] = rng.Float32()*2 - 1
		}
		vecs[i] = vec
	}
	return ids, vecs
}

func TestIndex_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 42))
	ids, vecs := randomDataset(rng, 1000, 8)
	tree := New()
	if err := tree.Build(ids, vecs); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	oracle := &bruteforce.Index{}
	if err := oracle.Build(ids, vecs); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	_, queries := randomDataset(rng, 100, 8)
	for n, q := range queries {
		gotID, gotDist, err := tree.Nearest(q)
		if err != nil {
			t.Fatalf("Nearest failed: %v", err)
		}
		wantID, wantDist, _ := oracle.Nearest(q)
		if gotID != wantID || gotDist != wantDist {
			t.Fatalf("query %d: Nearest = %v,%v; want %v,%v", n, gotID, gotDist, wantID, wantDist)
		}
	}
}

func TestIndex_Empty(t *testing.T) {
	idx := New()
	if err := idx.Build(nil, nil); err != nil {
		t.Fatalf("Build(empty) failed: %v", err)
	}
	if _, _, err := idx.Nearest([]float32{1}); !errors.Is(err, index.ErrEmpty) {
		t.Fatalf("Nearest err = %v, want ErrEmpty", err)
	}
	if idx.Height() != -1 {
		t.Fatalf("Height = %d, want -1", idx.Height())
	}
}

func TestIndex_RejectsCosine(t *testing.T) {
	idx := New(WithDistance(DistanceFunctionCosine))
	err := idx.Build([]string{"a"}, [][]float32{{1, 0}})
	if !errors.Is(err, ErrNotMetric) {
		t.Fatalf("Build err = %v, want ErrNotMetric", err)
	}
	if err := New(WithDistance("manhattan")).Build(nil, nil); err == nil {
		t.Fatalf("expected unsupported distance error")
	}
}

func TestIndex_BinaryRebuildsTree(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	ids, vecs := randomDataset(rng, 200, 3)
	src := New(WithSeed(9))
	if err := src.Build(ids, vecs); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	data, err := src.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}
	dst := New(WithSeed(9))
	if err := dst.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if dst.Len() != 200 || dst.Height() != src.Height() {
		t.Fatalf("restored Len=%d Height=%d; want 200, %d", dst.Len(), dst.Height(), src.Height())
	}
	q := []float32{0.1, -0.2, 0.3}
	a, da, _ := src.Nearest(q)
	b, db, _ := dst.Nearest(q)
	if a != b || da != db {
		t.Fatalf("restored Nearest = %v,%v; want %v,%v", b, db, a, da)
	}

	// the shared format is readable by the brute-force index
	oracle := &bruteforce.Index{}
	if err := oracle.UnmarshalBinary(data); err != nil {
		t.Fatalf("bruteforce UnmarshalBinary failed: %v", err)
	}
	if c, _, _ := oracle.Nearest(q); c != a {
		t.Fatalf("bruteforce Nearest = %v, want %v", c, a)
	}
}
