// Package vp implements index.Index with a vantage-point tree.
//
// Only true metrics can be indexed: the tree prunes with the triangle
// inequality, so cosine distance is rejected. The binary format is the
// shared dataset encoding; the tree is rebuilt on UnmarshalBinary.
package vp
