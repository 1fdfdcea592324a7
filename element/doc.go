// Package element defines the capability contract a concrete element type
// (transformations, matrices, bipartitions, boolean matrices, ...) must
// satisfy to be enumerated by package froidurepin. The contract mirrors
// how core.Vertex/core.Edge in the teacher repo keep domain values small
// and comparable, and how matrix.Matrix is consumed by multiple engines
// (tsp, dtw) through a narrow interface rather than a concrete type.
//
// This package also ships one reference Element implementation used by
// this module's own tests: Transformation (functions on a finite set,
// composed left-to-right).
package element
