// Package sample defines the SQLite-backed store for named reference sets
// (datasets) of interpolation samples. It includes:
//   - Store interface and SQLiteStore implementation
//   - Schema helpers to create the samples table
//   - Coordinate encoding (BLOB) consumed by the idw_l2 SQL function
package sample
