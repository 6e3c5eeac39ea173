// Package idw implements Inverse Distance Weighting (IDW) interpolation over
// a scattered set of 2D reference samples, together with a nearest-neighbour
// variant. Methods are selected by a string tag and resolved through a
// function table, so both variants share a single Interpolate entry point.
//
// A query point that coincides exactly with a reference sample yields that
// sample's value; zero distances never surface as Inf or NaN.
package idw
