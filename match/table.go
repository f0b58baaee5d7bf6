package match

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/viant/colorvp/color"
	"github.com/viant/colorvp/engine"
	"github.com/viant/colorvp/palette"
	"github.com/viant/colorvp/store"
	"modernc.org/sqlite/vtab"
)

const (
	idxScan = iota
	idxMatch
)

const (
	colHex = iota
	colName
	colDistance
)

// Table is a single color_match table bound to a palette table.
type Table struct {
	module *Module
	db     *sql.DB
	key    string
	source string
}

// BestIndex plans a MATCH lookup when a usable MATCH on hex is present and a
// full palette scan otherwise.
func (t *Table) BestIndex(info *vtab.IndexInfo) error {
	info.IdxNum = idxScan
	for i := range info.Constraints {
		c := &info.Constraints[i]
		if !c.Usable {
			continue
		}
		if c.Column == colHex && c.Op == vtab.OpMATCH {
			c.ArgIndex = 0
			c.Omit = true
			info.IdxNum = idxMatch
			break
		}
	}
	return nil
}

func (t *Table) palette(ctx context.Context) (*palette.Palette, *store.SQLiteStore, error) {
	return t.module.palette(ctx, t.db, t.key, t.source)
}

// Open allocates a new cursor.
func (t *Table) Open() (vtab.Cursor, error) { return &Cursor{table: t}, nil }

// Disconnect cleans up per-connection resources.
func (t *Table) Disconnect() error { return nil }

// Destroy leaves the palette table untouched.
func (t *Table) Destroy() error { return nil }

type row struct {
	hex      string
	name     string
	distance *float64
}

// Cursor iterates over the rows computed by Filter.
type Cursor struct {
	table *Table
	rows  []row
	pos   int
}

// Filter computes the result set based on idxNum/vals.
func (c *Cursor) Filter(idxNum int, _ string, vals []vtab.Value) error {
	c.rows = nil
	c.pos = 0
	ctx := context.Background()

	switch idxNum {
	case idxScan:
		_, st, err := c.table.palette(ctx)
		if err != nil {
			return err
		}
		colors, err := st.Colors(ctx)
		if err != nil {
			return err
		}
		for _, named := range colors {
			c.rows = append(c.rows, row{hex: named.Hex(), name: named.Name})
		}
		return nil
	case idxMatch:
		if len(vals) == 0 || vals[0] == nil {
			return fmt.Errorf("match: MATCH argument is required")
		}
		query, err := asColor(vals[0])
		if err != nil {
			return err
		}
		p, _, err := c.table.palette(ctx)
		if err != nil {
			return err
		}
		if p == nil {
			return nil
		}
		named, d := p.QuantizeWithDistance(query)
		c.rows = []row{{hex: named.Hex(), name: named.Name, distance: &d}}
		return nil
	default:
		return fmt.Errorf("match: unsupported query plan %d", idxNum)
	}
}

// asColor accepts a hex TEXT argument or an LCh BLOB produced by engine.EncodeColor.
func asColor(v vtab.Value) (color.Color, error) {
	switch val := v.(type) {
	case string:
		return color.FromHex(val)
	case []byte:
		if len(val) == 12 {
			return engine.DecodeColor(val)
		}
		return color.FromHex(string(val))
	default:
		return color.Color{}, fmt.Errorf("match: unsupported MATCH argument type %T", v)
	}
}

// Next advances the cursor.
func (c *Cursor) Next() error {
	if c.pos < len(c.rows) {
		c.pos++
	}
	return nil
}

// Eof reports whether the cursor is exhausted.
func (c *Cursor) Eof() bool { return c.pos >= len(c.rows) }

// Column returns the value of column col for the current row.
func (c *Cursor) Column(col int) (vtab.Value, error) {
	if c.pos < 0 || c.pos >= len(c.rows) {
		return nil, fmt.Errorf("match: Column out of range")
	}
	r := c.rows[c.pos]
	switch col {
	case colHex:
		return r.hex, nil
	case colName:
		return r.name, nil
	case colDistance:
		if r.distance == nil {
			return nil, nil
		}
		return *r.distance, nil
	}
	return nil, nil
}

// Rowid returns the 1-based position of the current row.
func (c *Cursor) Rowid() (int64, error) { return int64(c.pos + 1), nil }

// Close releases the cursor's rows.
func (c *Cursor) Close() error {
	c.rows = nil
	c.pos = 0
	return nil
}
