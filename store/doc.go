// Package store persists named-color palettes in SQLite. Each palette table
// carries insert/update/delete triggers that bump a per-table version in
// palette_version, so readers can cheaply detect when a cached tree is stale.
package store
