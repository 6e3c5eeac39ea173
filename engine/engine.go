package engine

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// Open opens a SQLite database using the modernc.org/sqlite driver.
//
// For file-based databases, pass a path like "./samples.sqlite". For
// in-memory databases, pass ":memory:"; each pooled connection then sees its
// own database, so limit the pool with SetMaxOpenConns(1).
func Open(dsn string) (*sql.DB, error) { return sql.Open("sqlite", dsn) }

// OpenWithFunctions registers the IDW SQL functions and then opens dsn, so
// every connection of the returned pool can call idw_distance, idw_l2, idw
// and idw_nearest.
func OpenWithFunctions(dsn string) (*sql.DB, error) {
	if err := RegisterFunctions(nil); err != nil {
		return nil, fmt.Errorf("engine: register functions: %w", err)
	}
	return Open(dsn)
}
