package surface

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/viant/sqlite-idw/geom"
	"github.com/viant/sqlite-idw/idw"
	"github.com/viant/sqlite-idw/sample"
)

// Surface provides a higher-level API on top of the samples table: a named
// dataset interpolated with a fixed method and power.
type Surface struct {
	DB      *sql.DB
	Dataset string
	Method  idw.Method
	Power   float64

	store *sample.SQLiteStore
}

// NewSurface constructs a Surface for the given dataset.
//
// EstimateSQL and Nearest use SQL functions registered by
// engine.RegisterFunctions; register them before opening db.
func NewSurface(db *sql.DB, dataset string, method idw.Method, power float64) (*Surface, error) {
	if db == nil {
		return nil, fmt.Errorf("surface: db is nil")
	}
	if dataset == "" {
		return nil, fmt.Errorf("surface: dataset is empty")
	}
	if !method.Valid() {
		return nil, fmt.Errorf("surface: %w: %q", idw.ErrUnsupportedMethod, string(method))
	}
	if err := idw.ValidatePower(power); err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	store, err := sample.NewSQLiteStore(db)
	if err != nil {
		return nil, err
	}
	return &Surface{
		DB:      db,
		Dataset: dataset,
		Method:  method,
		Power:   power,
		store:   store,
	}, nil
}

// Store returns the sample store backing the surface.
func (s *Surface) Store() sample.Store { return s.store }

// Estimate loads the dataset and interpolates the value at query in Go.
func (s *Surface) Estimate(ctx context.Context, query geom.Point) (float64, error) {
	refs, err := s.store.Load(ctx, s.Dataset)
	if err != nil {
		return 0, err
	}
	v, err := idw.Interpolate(query, refs, s.Method, s.Power)
	if err != nil {
		return 0, fmt.Errorf("surface: dataset %q: %w", s.Dataset, err)
	}
	return v, nil
}

// EstimateSQL computes the same estimate as Estimate with the idw or
// idw_nearest SQL aggregate. Samples are fed in insertion order so ties
// resolve identically.
func (s *Surface) EstimateSQL(ctx context.Context, query geom.Point) (float64, error) {
	n, err := s.store.Count(ctx, s.Dataset)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("surface: dataset %q: %w", s.Dataset, idw.ErrEmptyInput)
	}
	if err := idw.ValidateQuery(query); err != nil {
		return 0, fmt.Errorf("surface: dataset %q: %w", s.Dataset, err)
	}

	const ordered = `(SELECT x, y, value FROM samples WHERE dataset = ? ORDER BY seq)`
	var row *sql.Row
	switch s.Method {
	case idw.NearestNeighbor:
		row = s.DB.QueryRowContext(ctx, `SELECT idw_nearest(x, y, value, ?, ?) FROM `+ordered,
			query.X, query.Y, s.Dataset)
	default:
		row = s.DB.QueryRowContext(ctx, `SELECT idw(x, y, value, ?, ?, ?) FROM `+ordered,
			query.X, query.Y, s.Power, s.Dataset)
	}
	var v float64
	if err := row.Scan(&v); err != nil {
		return 0, fmt.Errorf("surface: dataset %q: %w", s.Dataset, err)
	}
	return v, nil
}

// Nearest returns the stored sample closest to query.
func (s *Surface) Nearest(ctx context.Context, query geom.Point) (geom.Point, error) {
	return s.store.Nearest(ctx, s.Dataset, query)
}
