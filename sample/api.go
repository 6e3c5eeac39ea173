package sample

import (
	"context"

	"github.com/viant/sqlite-idw/geom"
)

// Store defines the application-level sample store API. A dataset is an
// ordered reference set; insertion order is preserved so tie-breaking by
// input order stays stable across a round trip.
type Store interface {
	// Add appends samples to the dataset. Every point must carry a value.
	Add(ctx context.Context, dataset string, samples []geom.Point) error

	// Load returns the dataset's samples in insertion order.
	Load(ctx context.Context, dataset string) ([]geom.Point, error)

	// Nearest returns the sample closest to query, first by insertion order
	// on ties.
	Nearest(ctx context.Context, dataset string, query geom.Point) (geom.Point, error)

	// Count returns the number of samples in the dataset.
	Count(ctx context.Context, dataset string) (int, error)

	// Datasets lists the names of non-empty datasets in lexical order.
	Datasets(ctx context.Context) ([]string, error)

	// Remove deletes every sample of the dataset.
	Remove(ctx context.Context, dataset string) error
}
