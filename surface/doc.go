// Package surface binds a stored dataset to an interpolation method so
// callers can estimate values at query points without handling the sample
// store or SQL functions directly.
package surface
