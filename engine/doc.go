// Package engine provides helpers for working with the modernc.org/sqlite
// driver in this module: opening connections, registering the color and
// vector SQL scalar functions, and the LCh BLOB codec they share with the
// palette store.
package engine
