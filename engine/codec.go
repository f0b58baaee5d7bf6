package engine

import (
	"fmt"

	"github.com/viant/colorvp/color"
	"github.com/viant/colorvp/vector"
)

// EncodeColor stores c as a 3 x float32 BLOB (luminance, chroma, hue).
func EncodeColor(c color.Color) []byte {
	return vector.Vector{float32(c.Luminance), float32(c.Chroma), float32(c.Hue)}.Encode()
}

// DecodeColor parses a BLOB produced by EncodeColor.
func DecodeColor(b []byte) (color.Color, error) {
	v, err := vector.Decode(b)
	if err != nil {
		return color.Color{}, err
	}
	if len(v) != 3 {
		return color.Color{}, fmt.Errorf("engine: color blob has %d channels, want 3", len(v))
	}
	return color.Color{Luminance: float64(v[0]), Chroma: float64(v[1]), Hue: float64(v[2])}, nil
}
