// Package vptree implements a vantage-point tree for exact nearest-neighbor
// search over an arbitrary metric space.
//
// A tree is built once from a non-empty batch of points and a caller-supplied
// distance function, then queried any number of times. Construction is
// randomized with a fixed seed so the same input order always yields the same
// tree. Queries use branch-and-bound pruning derived from the triangle
// inequality and always return a true nearest point.
//
// The distance function must be a metric: non-negative, symmetric and
// satisfying the triangle inequality. A function that violates these
// properties does not crash the tree, but Nearest may then return a point
// that is not the closest one.
//
// A built tree is immutable and may be shared by concurrent readers.
package vptree
