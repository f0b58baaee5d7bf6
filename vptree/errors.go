package vptree

import "errors"

var (
	// ErrEmptyInput is returned by Build when no points are supplied. There is
	// no empty tree: callers must special-case empty datasets.
	ErrEmptyInput = errors.New("vptree: empty input")

	// ErrNilDistance is returned by Build when the distance function is nil.
	ErrNilDistance = errors.New("vptree: distance function is nil")
)
