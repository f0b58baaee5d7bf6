package palette

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/viant/afs"
	"github.com/viant/colorvp/color"
)

// Decode reads a JSON object mapping "#rrggbb" keys to color names. Entries
// are returned sorted by key so palettes built from the same document always
// have the same shape.
func Decode(r io.Reader) ([]NamedColor, error) {
	var raw map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("palette: decode: %w", err)
	}
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]NamedColor, 0, len(keys))
	for _, hex := range keys {
		name, ok := raw[hex].(string)
		if !ok {
			return nil, fmt.Errorf("palette: entry %q: string value expected, got %T", hex, raw[hex])
		}
		c, err := color.FromHex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette: entry %q: %w", hex, err)
		}
		out = append(out, NamedColor{Name: name, Color: c})
	}
	return out, nil
}

// Load reads and decodes the palette document at URL and builds a Palette.
// A nil fs uses afs.New().
func Load(ctx context.Context, fs afs.Service, URL string, opts ...Option) (*Palette, error) {
	if fs == nil {
		fs = afs.New()
	}
	reader, err := fs.OpenURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("palette: open %v: %w", URL, err)
	}
	defer reader.Close()
	colors, err := Decode(reader)
	if err != nil {
		return nil, err
	}
	p, err := New(colors, opts...)
	if err != nil {
		return nil, err
	}
	p.logger.Info("palette loaded", "url", URL, "colors", p.Len(), "height", p.Height())
	return p, nil
}
