package index

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Validate checks that ids and vectors are parallel and share a dimension,
// returning that dimension (0 for an empty dataset).
func Validate(ids []string, vectors [][]float32) (int, error) {
	if len(ids) != len(vectors) {
		return 0, fmt.Errorf("index: ids and vectors length mismatch: %d != %d", len(ids), len(vectors))
	}
	if len(vectors) == 0 {
		return 0, nil
	}
	dim := len(vectors[0])
	for j := range vectors {
		if len(vectors[j]) != dim {
			return 0, fmt.Errorf("index: inconsistent vector dims %d vs %d", len(vectors[j]), dim)
		}
	}
	return dim, nil
}

// Encode stores: dim(uint32), n(uint32), then for each item:
// idLen(uint32), id bytes, vec(float32[dim]), all little-endian.
func Encode(dim int, ids []string, vectors [][]float32) []byte {
	size := 8
	for _, id := range ids {
		size += 4 + len(id) + 4*dim
	}
	out := make([]byte, 0, size)
	out = binary.LittleEndian.AppendUint32(out, uint32(dim))
	out = binary.LittleEndian.AppendUint32(out, uint32(len(ids)))
	for idx, id := range ids {
		out = binary.LittleEndian.AppendUint32(out, uint32(len(id)))
		out = append(out, id...)
		for _, v := range vectors[idx] {
			out = binary.LittleEndian.AppendUint32(out, math.Float32bits(v))
		}
	}
	return out
}

// Decode parses Encode output.
func Decode(data []byte) ([]string, [][]float32, error) {
	if len(data) < 8 {
		return nil, nil, errors.New("index: invalid data")
	}
	off := 0
	getU32 := func() uint32 { v := binary.LittleEndian.Uint32(data[off : off+4]); off += 4; return v }
	dim := int(getU32())
	n := int(getU32())
	ids := make([]string, 0, min(n, len(data)/4))
	vecs := make([][]float32, 0, cap(ids))
	for idx := 0; idx < n; idx++ {
		if off+4 > len(data) {
			return nil, nil, errors.New("index: truncated")
		}
		idlen := int(getU32())
		if off+idlen > len(data) {
			return nil, nil, errors.New("index: truncated id")
		}
		ids = append(ids, string(data[off:off+idlen]))
		off += idlen
		if off+4*dim > len(data) {
			return nil, nil, errors.New("index: truncated vec")
		}
		vec := make([]float32, dim)
		for j := range vec {
			vec[j] = math.Float32frombits(getU32())
		}
		vecs = append(vecs, vec)
	}
	return ids, vecs, nil
}
