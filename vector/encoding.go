package vector

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Encode returns v as a BLOB of little-endian IEEE 754 float32 values. The
// dimension is implied by the BLOB length; an empty vector encodes to nil.
func (v Vector) Encode() []byte {
	if len(v) == 0 {
		return nil
	}
	b := make([]byte, len(v)*4)
	for i, x := range v {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(x))
	}
	return b
}

// Decode parses a BLOB produced by Encode.
func Decode(b []byte) (Vector, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("vector: invalid blob length %d (not multiple of 4)", len(b))
	}
	v := make(Vector, len(b)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v, nil
}
