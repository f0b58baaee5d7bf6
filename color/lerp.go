package color

import "math"

// Lerp interpolates one channel of a color. Position is the inverse of
// Apply: it reports where a color sits on the interpolated range.
type Lerp struct {
	Apply    func(c Color, t float64) Color
	Position func(c Color) float64
}

// LuminanceLerp interpolates luminance between start and end.
func LuminanceLerp(start, end float64) Lerp {
	return Lerp{
		Apply: func(c Color, t float64) Color {
			c.Luminance = start + (end-start)*t
			return c
		},
		Position: func(c Color) float64 { return (c.Luminance - start) / (end - start) },
	}
}

// ChromaLerp interpolates chroma between start and end.
func ChromaLerp(start, end float64) Lerp {
	return Lerp{
		Apply: func(c Color, t float64) Color {
			c.Chroma = start + (end-start)*t
			return c
		},
		Position: func(c Color) float64 { return (c.Chroma - start) / (end - start) },
	}
}

// HueLerp interpolates hue between start and end.
func HueLerp(start, end float64) Lerp {
	return Lerp{
		Apply: func(c Color, t float64) Color {
			c.Hue = start + (end-start)*t
			return c
		},
		Position: func(c Color) float64 { return (c.Hue - start) / (end - start) },
	}
}

// Shades splits the lerp range into maxShades equal steps aligned so that one
// step lands exactly on base. It returns the shades and the index of base.
func Shades(base Color, maxShades int, lerp Lerp) ([]Color, int) {
	if maxShades <= 0 {
		return nil, 0
	}
	width := 1 / float64(maxShades)
	pos := lerp.Position(base)
	index := int(math.Floor(pos / width))
	offset := math.Mod(pos, width)
	shades := make([]Color, maxShades)
	for i := range shades {
		shades[i] = lerp.Apply(base, width*float64(i)+offset)
	}
	return shades, index
}
