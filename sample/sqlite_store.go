package sample

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/viant/sqlite-idw/geom"
	"github.com/viant/sqlite-idw/idw"
)

// SQLiteStore implements Store on top of a SQLite database.
//
// Nearest relies on the idw_distance SQL function; call engine.RegisterFunctions
// before opening the database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-backed Store. It ensures the samples
// schema exists in the provided database.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("sample: db is nil")
	}
	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// Add appends samples to the dataset in a single transaction, continuing
// the dataset's insertion sequence.
func (s *SQLiteStore) Add(ctx context.Context, dataset string, samples []geom.Point) error {
	if dataset == "" {
		return fmt.Errorf("sample: dataset name is empty")
	}
	if len(samples) == 0 {
		return nil
	}
	for i, p := range samples {
		if !p.HasValue() {
			return fmt.Errorf("sample: %w at index %d", idw.ErrMissingValue, i)
		}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var next int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq) + 1, 0) FROM samples WHERE dataset = ?`, dataset).Scan(&next); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO samples(dataset, seq, x, y, value, coord) VALUES(?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, p := range samples {
		v, _ := p.Value()
		if _, err := stmt.ExecContext(ctx, dataset, next+int64(i), p.X, p.Y, v, EncodeCoord(p)); err != nil {
			return fmt.Errorf("sample: insert %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// Load returns the dataset's samples in insertion order. An unknown dataset
// yields an empty slice.
func (s *SQLiteStore) Load(ctx context.Context, dataset string) ([]geom.Point, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	rows, err := s.db.QueryContext(ctx, `SELECT x, y, value FROM samples WHERE dataset = ? ORDER BY seq`, dataset)
	if err != nil {
		return nil, err
	}
	return scanSamples(rows)
}

// Nearest returns the sample closest to query. The idw_distance function
// selects in SQL the samples at the minimum float64 distance; geom.Nearest
// then picks the first of them by insertion order.
func (s *SQLiteStore) Nearest(ctx context.Context, dataset string, query geom.Point) (geom.Point, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	rows, err := s.db.QueryContext(ctx, `SELECT x, y, value FROM samples
WHERE dataset = ? AND idw_distance(x, y, ?, ?) = (
	SELECT MIN(idw_distance(x, y, ?, ?)) FROM samples WHERE dataset = ?)
ORDER BY seq`, dataset, query.X, query.Y, query.X, query.Y, dataset)
	if err != nil {
		return geom.Point{}, err
	}
	points, err := scanSamples(rows)
	if err != nil {
		return geom.Point{}, err
	}
	if len(points) == 0 {
		return geom.Point{}, fmt.Errorf("sample: dataset %q: %w", dataset, idw.ErrEmptyInput)
	}
	i, _ := geom.Nearest(query, points)
	return points[i], nil
}

// Count returns the number of samples in the dataset.
func (s *SQLiteStore) Count(ctx context.Context, dataset string) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM samples WHERE dataset = ?`, dataset).Scan(&n)
	return n, err
}

// Datasets lists dataset names in lexical order.
func (s *SQLiteStore) Datasets(ctx context.Context) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT dataset FROM samples ORDER BY dataset`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

// Remove deletes every sample of the dataset.
func (s *SQLiteStore) Remove(ctx context.Context, dataset string) error {
	if dataset == "" {
		return fmt.Errorf("sample: Remove called with empty dataset")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM samples WHERE dataset = ?`, dataset)
	return err
}

func scanSamples(rows *sql.Rows) ([]geom.Point, error) {
	defer rows.Close()
	var out []geom.Point
	for rows.Next() {
		var x, y, v float64
		if err := rows.Scan(&x, &y, &v); err != nil {
			return nil, err
		}
		out = append(out, geom.NewSample(x, y, v))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Ensure SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)
