package idw

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/viant/sqlite-idw/geom"
)

// Interpolate estimates the value at query from refs using the given method
// and power exponent.
//
// Checks run in order: method, power, reference set, query. A query that
// coincides with a reference point returns that point's value under either
// method; ties resolve to the first point in input order.
func Interpolate(query geom.Point, refs []geom.Point, method Method, power float64) (float64, error) {
	fn := method.Func()
	if fn == nil {
		return 0, unsupported(method)
	}
	if err := ValidatePower(power); err != nil {
		return 0, err
	}
	if err := validateRefs(refs); err != nil {
		return 0, err
	}
	if err := ValidateQuery(query); err != nil {
		return 0, err
	}
	return fn(query, refs, power), nil
}

// Weights returns the normalized inverse distance weights of refs relative to
// query. The weights are index-aligned with refs and sum to 1. When query
// coincides with a reference point the result is one-hot at the first such
// point.
func Weights(query geom.Point, refs []geom.Point, power float64) ([]float64, error) {
	if err := ValidatePower(power); err != nil {
		return nil, err
	}
	if err := validateRefs(refs); err != nil {
		return nil, err
	}
	if err := ValidateQuery(query); err != nil {
		return nil, err
	}
	w := relativeWeights(query, refs, power)
	floats.Scale(1/floats.Sum(w), w)
	return w, nil
}

func inverseDistance(query geom.Point, refs []geom.Point, power float64) float64 {
	w := relativeWeights(query, refs, power)
	return floats.Dot(w, values(refs)) / floats.Sum(w)
}

func nearestNeighbor(query geom.Point, refs []geom.Point, _ float64) float64 {
	i, _ := geom.Nearest(query, refs)
	v, _ := refs[i].Value()
	return v
}

// relativeWeights returns 1/d^power scaled by dmin^power, i.e. (dmin/d)^power.
// The closest point always weighs 1, so the sum never underflows to zero for
// large powers. A zero distance yields a one-hot vector at the first
// coincident point. When even the closest distance overflows, the ratios are
// taken over half-scaled distances, which leaves them unchanged.
func relativeWeights(query geom.Point, refs []geom.Point, power float64) []float64 {
	dists := geom.Distances(query, refs)
	nearest := floats.MinIdx(dists)
	dmin := dists[nearest]
	if math.IsInf(dmin, 1) {
		for i := range refs {
			dists[i] = geom.ScaledDistance(query, refs[i])
		}
		nearest = floats.MinIdx(dists)
		dmin = dists[nearest]
	}
	w := make([]float64, len(dists))
	if dmin == 0 {
		w[nearest] = 1
		return w
	}
	for i, d := range dists {
		w[i] = math.Pow(dmin/d, power)
	}
	return w
}

func values(refs []geom.Point) []float64 {
	out := make([]float64, len(refs))
	for i := range refs {
		out[i], _ = refs[i].Value()
	}
	return out
}

func unsupported(m Method) error {
	return fmt.Errorf("idw: %w: %q", ErrUnsupportedMethod, string(m))
}

// ValidatePower reports ErrInvalidParameter for a NaN or infinite power.
func ValidatePower(power float64) error {
	if math.IsNaN(power) || math.IsInf(power, 0) {
		return fmt.Errorf("idw: %w: power %v is not finite", ErrInvalidParameter, power)
	}
	return nil
}

func validateRefs(refs []geom.Point) error {
	if len(refs) == 0 {
		return fmt.Errorf("idw: %w", ErrEmptyInput)
	}
	for i, p := range refs {
		v, ok := p.Value()
		if !ok {
			return fmt.Errorf("idw: %w at index %d", ErrMissingValue, i)
		}
		if !finite(p.X) || !finite(p.Y) || !finite(v) {
			return fmt.Errorf("idw: %w: reference %d (%v, %v, %v) is not finite", ErrInvalidParameter, i, p.X, p.Y, v)
		}
	}
	return nil
}

// ValidateQuery reports ErrInvalidParameter for a query with a NaN or
// infinite coordinate.
func ValidateQuery(query geom.Point) error {
	if !finite(query.X) || !finite(query.Y) {
		return fmt.Errorf("idw: %w: query (%v, %v) is not finite", ErrInvalidParameter, query.X, query.Y)
	}
	return nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
