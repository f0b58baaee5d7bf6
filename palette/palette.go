package palette

import (
	"fmt"
	"log/slog"

	"github.com/viant/colorvp/color"
	"github.com/viant/colorvp/vptree"
)

// Palette answers nearest-color queries over a fixed set of named colors.
// It is immutable and safe for concurrent use.
type Palette struct {
	tree   *vptree.Tree[NamedColor, float64]
	logger *slog.Logger
}

// New builds a palette from colors, taking ownership of the slice. An empty
// slice yields an error wrapping vptree.ErrEmptyInput.
func New(colors []NamedColor, opts ...Option) (*Palette, error) {
	o := newOptions(opts)
	tree, err := vptree.Build(colors, Distance, vptree.WithSeed(o.seed))
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	o.logger.Debug("palette constructed", "colors", tree.Len(), "height", tree.Height())
	return &Palette{tree: tree, logger: o.logger}, nil
}

// Quantize returns the palette entry closest to c.
func (p *Palette) Quantize(c color.Color) NamedColor {
	return p.tree.Nearest(NamedColor{Color: c})
}

// QuantizeWithDistance returns the closest entry and its distance to c.
func (p *Palette) QuantizeWithDistance(c color.Color) (NamedColor, float64) {
	return p.tree.NearestWithDistance(NamedColor{Color: c})
}

// QuantizeHex parses hex and returns the closest entry.
func (p *Palette) QuantizeHex(hex string) (NamedColor, error) {
	c, err := color.FromHex(hex)
	if err != nil {
		return NamedColor{}, err
	}
	return p.Quantize(c), nil
}

// QuantizedShades samples maxShades evenly spaced points of lerp starting
// from base, quantizes each, and drops consecutive repeats.
func (p *Palette) QuantizedShades(base color.Color, maxShades int, lerp color.Lerp) []NamedColor {
	var out []NamedColor
	for i := 0; i < maxShades; i++ {
		t := float64(i) / float64(maxShades)
		named := p.Quantize(lerp.Apply(base, t))
		if len(out) > 0 && out[len(out)-1].Equal(named) {
			continue
		}
		out = append(out, named)
	}
	return out
}

// Height returns the height of the underlying tree.
func (p *Palette) Height() int { return p.tree.Height() }

// Len returns the number of palette entries.
func (p *Palette) Len() int { return p.tree.Len() }

// Colors returns a copy of every entry in tree order.
func (p *Palette) Colors() []NamedColor {
	out := make([]NamedColor, 0, p.tree.Len())
	p.tree.Do(func(c NamedColor, _ int) bool {
		out = append(out, c)
		return false
	})
	return out
}
