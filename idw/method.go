package idw

import (
	"fmt"
	"strings"

	"github.com/viant/sqlite-idw/geom"
)

// Method names a supported interpolation method.
type Method string

const (
	// InverseDistance estimates a normalized inverse-distance-weighted average.
	InverseDistance Method = "idw"
	// NearestNeighbor returns the value of the closest reference sample.
	NearestNeighbor Method = "nn"
)

// DefaultPower is the customary IDW power exponent.
const DefaultPower = 2.0

// Func computes an estimate for query. Implementations receive a non-empty,
// fully valued reference set and a finite power.
type Func func(query geom.Point, refs []geom.Point, power float64) float64

var methods = map[Method]Func{
	InverseDistance: inverseDistance,
	NearestNeighbor: nearestNeighbor,
}

// Func resolves the callable implementation, or nil for an unknown method.
func (m Method) Func() Func {
	return methods[m]
}

// Valid reports whether m names a supported method.
func (m Method) Valid() bool {
	return m.Func() != nil
}

// String implements fmt.Stringer.
func (m Method) String() string { return string(m) }

// ParseMethod resolves a method name. Tags are matched case-insensitively and
// "inverse_distance" and "nearest" are accepted as aliases.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "idw", "inverse_distance":
		return InverseDistance, nil
	case "nn", "nearest":
		return NearestNeighbor, nil
	}
	return "", fmt.Errorf("idw: %w: %q", ErrUnsupportedMethod, name)
}
