// Package color models colors in a tristimulus LCh space normalized to 0-1
// and provides the metric used to match colors against a palette.
package color
