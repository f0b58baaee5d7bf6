// Package index defines a minimal abstraction for exact nearest-neighbor
// vector indexes and the binary dataset format they share. Implementations
// include a brute-force baseline and a vantage-point tree. Only the dataset
// is persisted: tree-backed indexes are rebuilt on load.
package index
