package store

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	// DefaultTable is the palette table used when none is configured.
	DefaultTable = "colors"

	// VersionTable stores the change counter of every palette table.
	VersionTable = "palette_version"
)

// ErrInvalidTable is returned for table names that are not plain SQL identifiers.
var ErrInvalidTable = errors.New("store: invalid table name")

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateTable reports an ErrInvalidTable error unless table matches
// [A-Za-z_][A-Za-z0-9_]*.
func ValidateTable(table string) error {
	if !identifierPattern.MatchString(table) {
		return fmt.Errorf("%w: %q", ErrInvalidTable, table)
	}
	return nil
}

// QuoteIdentifier returns name as a double-quoted SQL identifier.
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// TableDDL returns the DDL of a palette table. The lch column holds the
// color as a 3 x float32 BLOB (see engine.EncodeColor).
func TableDDL(table string) string {
	return `CREATE TABLE IF NOT EXISTS ` + QuoteIdentifier(table) + ` (
    hex  TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    lch  BLOB NOT NULL
);`
}

// VersionTableDDL returns the DDL of palette_version.
func VersionTableDDL() string {
	return `CREATE TABLE IF NOT EXISTS ` + VersionTable + ` (
    table_name TEXT PRIMARY KEY,
    version    INTEGER NOT NULL
);`
}

// VersionTriggers returns trigger DDL advancing palette_version whenever the
// palette table changes. table must pass ValidateTable.
func VersionTriggers(table string) []string {
	literal := strings.ReplaceAll(table, `'`, `''`)
	advance := fmt.Sprintf(`INSERT INTO %[1]s(table_name, version)
    VALUES ('%[2]s', 1)
    ON CONFLICT(table_name) DO UPDATE SET version = version + 1;`, VersionTable, literal)

	var out []string
	for _, ev := range []struct{ suffix, op string }{{"ai", "INSERT"}, {"au", "UPDATE"}, {"ad", "DELETE"}} {
		out = append(out, fmt.Sprintf(`CREATE TRIGGER IF NOT EXISTS %s AFTER %s ON %s
BEGIN
    %s
END;`, QuoteIdentifier(table+"_"+ev.suffix), ev.op, QuoteIdentifier(table), advance))
	}
	return out
}

// EnsureSchema creates the palette table, the version table and the version
// triggers if they do not already exist.
func EnsureSchema(db *sql.DB, table string) error {
	if err := ValidateTable(table); err != nil {
		return err
	}
	stmts := append([]string{TableDDL(table), VersionTableDDL()}, VersionTriggers(table)...)
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("store: schema for %v: %w", table, err)
		}
	}
	return nil
}
