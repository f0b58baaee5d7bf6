package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/viant/colorvp/color"
	"github.com/viant/colorvp/engine"
	"github.com/viant/colorvp/palette"
)

// SQLiteStore keeps a palette in a single SQLite table keyed by hex code.
type SQLiteStore struct {
	db    *sql.DB
	table string
}

// NewSQLiteStore creates a store over table (DefaultTable when empty) and
// ensures its schema exists.
func NewSQLiteStore(db *sql.DB, table string) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is nil")
	}
	if table == "" {
		table = DefaultTable
	}
	if err := ValidateTable(table); err != nil {
		return nil, err
	}
	if err := EnsureSchema(db, table); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db, table: table}, nil
}

// Table returns the palette table name.
func (s *SQLiteStore) Table() string { return s.table }

// AddColors upserts colors in one transaction, keyed by their hex code.
func (s *SQLiteStore) AddColors(ctx context.Context, colors []palette.NamedColor) error {
	if len(colors) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`INSERT INTO %s(hex, name, lch) VALUES(?, ?, ?)
ON CONFLICT(hex) DO UPDATE SET name = excluded.name, lch = excluded.lch`, QuoteIdentifier(s.table)))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range colors {
		if c.Name == "" {
			return fmt.Errorf("store: color %v has no name", c.Hex())
		}
		if _, err := stmt.ExecContext(ctx, c.Hex(), c.Name, engine.EncodeColor(c.Color)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Colors loads every stored color ordered by hex code.
func (s *SQLiteStore) Colors(ctx context.Context) ([]palette.NamedColor, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`SELECT name, lch FROM %s ORDER BY hex`, QuoteIdentifier(s.table)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []palette.NamedColor
	for rows.Next() {
		var name string
		var blob []byte
		if err := rows.Scan(&name, &blob); err != nil {
			return nil, err
		}
		c, err := engine.DecodeColor(blob)
		if err != nil {
			return nil, err
		}
		out = append(out, palette.NamedColor{Name: name, Color: c})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Palette loads the stored colors and builds a palette from them.
func (s *SQLiteStore) Palette(ctx context.Context, opts ...palette.Option) (*palette.Palette, error) {
	colors, err := s.Colors(ctx)
	if err != nil {
		return nil, err
	}
	return palette.New(colors, opts...)
}

// Remove deletes the color with the given hex code.
func (s *SQLiteStore) Remove(ctx context.Context, hex string) error {
	if hex == "" {
		return fmt.Errorf("store: Remove called with empty hex")
	}
	if c, err := color.FromHex(hex); err == nil {
		hex = c.Hex()
	}
	_, err := s.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE hex = ?`, QuoteIdentifier(s.table)), hex)
	return err
}

// Version returns the change counter of the palette table; 0 means it was
// never written.
func (s *SQLiteStore) Version(ctx context.Context) (int64, error) {
	return TableVersion(ctx, s.db, s.table)
}

// TableVersion reads the change counter of table from palette_version.
func TableVersion(ctx context.Context, db *sql.DB, table string) (int64, error) {
	var version int64
	err := db.QueryRowContext(ctx, `SELECT version FROM `+VersionTable+` WHERE table_name = ?`, table).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return version, err
}
