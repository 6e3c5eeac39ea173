// Package geom defines the planar point model shared by this module and the
// Euclidean distance helpers used by the interpolation engine and the sample
// store.
package geom
