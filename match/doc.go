// Package match implements the color_match SQLite virtual table, which
// answers nearest-palette-color queries with MATCH semantics:
//
//	host, _ := match.Host()
//	_ = match.Bind(ctx, db, "nearest", "colors")
//	host.QueryRow(`SELECT hex, name, distance FROM nearest WHERE hex MATCH ?`, "#ff3860")
//
// The driver installs Go modules on a single connection per process, so
// color_match tables live on a process-wide in-memory host connection
// (Host). Each table is bound to a registered palette database by key:
//
//	CREATE VIRTUAL TABLE nearest USING color_match(colors, <key>);
//
// The first argument names the palette table (see package store); the second
// is the key Register assigned to the database. A MATCH query returns the
// single nearest entry. Without MATCH the table lists the whole palette.
// Palettes are cached per database and table and rebuilt when the table's
// version counter changes.
package match
