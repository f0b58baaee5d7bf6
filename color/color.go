package color

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a CIE LCh(ab) color with every channel normalized to 0-1:
// luminance is L/100, chroma is C/100 and hue is degrees/360.
type Color struct {
	Luminance float64
	Chroma    float64
	Hue       float64
}

var (
	// White is the lightest neutral color.
	White = Color{Luminance: 1}
	// Black is the darkest neutral color.
	Black = Color{}
)

// FromHex parses a "#rrggbb" (or "#rgb") string.
func FromHex(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("color: invalid hex %q: %w", hex, err)
	}
	h, chroma, l := c.Hcl()
	return Color{Luminance: l, Chroma: chroma, Hue: h / 360}, nil
}

// MustHex is like FromHex but panics on malformed input.
func MustHex(hex string) Color {
	c, err := FromHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c as "#rrggbb", clamping colors outside the sRGB gamut.
func (c Color) Hex() string {
	return c.colorful().Clamped().Hex()
}

// RGB returns the 8-bit sRGB channels of c, clamped to the gamut.
func (c Color) RGB() (r, g, b uint8) {
	return c.colorful().Clamped().RGB255()
}

func (c Color) colorful() colorful.Color {
	return colorful.Hcl(c.Hue*360, c.Chroma, c.Luminance)
}

// Rotate shifts the hue by amount, wrapping around the color wheel.
func (c Color) Rotate(amount float64) Color {
	hue := math.Mod(c.Hue+amount, 1)
	if hue < 0 {
		hue += 1
	}
	c.Hue = hue
	return c
}

// Contrast returns white for dark colors and black for light ones, suitable
// for text or markers drawn over c.
func (c Color) Contrast() Color {
	if c.Luminance < 0.5 {
		return White
	}
	return Black
}

// Distance is the palette metric: circular hue distance plus the absolute
// chroma and luminance differences. Each term is a metric, so the sum is one.
func Distance(a, b Color) float64 {
	dh := math.Abs(a.Hue - b.Hue)
	dh = math.Min(dh, 1-dh)
	return dh + math.Abs(b.Chroma-a.Chroma) + math.Abs(b.Luminance-a.Luminance)
}
