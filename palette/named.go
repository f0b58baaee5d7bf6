package palette

import "github.com/viant/colorvp/color"

// NamedColor is a palette entry. Two entries are equal when their names are.
type NamedColor struct {
	Name  string
	Color color.Color
}

// Equal reports whether n and other carry the same name.
func (n NamedColor) Equal(other NamedColor) bool {
	return n.Name == other.Name
}

// Hex returns the entry's color as "#rrggbb".
func (n NamedColor) Hex() string {
	return n.Color.Hex()
}

// Distance is the palette metric lifted to named colors.
func Distance(a, b NamedColor) float64 {
	return color.Distance(a.Color, b.Color)
}
