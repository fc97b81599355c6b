// Package grid partitions the observed time range of a schedule into rows and
// maps entries onto them.
//
// Breakpoints are every entry start and end, so two entries covering the same
// absolute range always span the same rows and therefore render with the same
// total height, whichever lane they sit in. Row heights are a pure function of
// the intervals and the zoom parameters; changing zoom never moves a
// boundary.
package grid
