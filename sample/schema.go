package sample

import (
	"database/sql"
)

const samplesSchema = `
CREATE TABLE IF NOT EXISTS samples (
    dataset TEXT NOT NULL,
    seq     INTEGER NOT NULL,
    x       REAL NOT NULL,
    y       REAL NOT NULL,
    value   REAL NOT NULL,
    coord   BLOB,
    PRIMARY KEY(dataset, seq)
);
`

// EnsureSchema creates the samples table in the provided database if it does
// not already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(samplesSchema)
	return err
}
