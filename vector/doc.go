// Package vector defines the float32 vector point type shared by the index
// and storage packages: Euclidean and cosine helpers plus the little-endian
// BLOB encoding used to persist vectors in SQLite.
package vector
