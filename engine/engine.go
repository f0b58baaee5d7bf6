package engine

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// Open opens the SQLite database at dsn with color_distance and vec_l2
// available on every connection.
//
// An in-memory database lives only as long as its connection, so its pool
// is pinned to one connection that is never recycled.
func Open(dsn string) (*sql.DB, error) {
	if err := RegisterFunctions(); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("engine: open %v: %w", dsn, err)
	}
	if IsMemory(dsn) {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
		db.SetConnMaxIdleTime(0)
	}
	return db, nil
}

// IsMemory reports whether dsn names an in-memory database.
func IsMemory(dsn string) bool {
	return dsn == ":memory:" || strings.HasPrefix(dsn, "file::memory:") || strings.Contains(dsn, "mode=memory")
}
