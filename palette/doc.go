// Package palette maps arbitrary colors to the closest entry of a named-color
// palette. Palettes are loaded from a JSON object of "#rrggbb": "name" pairs
// through afs, so the source can be a local file or any afs-supported URL.
package palette
