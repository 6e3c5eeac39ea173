package geom

// Point is a 2D location with an optional scalar value. Points are immutable
// once constructed; use NewPoint for query locations and NewSample for
// reference samples with a known value.
type Point struct {
	X, Y float64

	value    float64
	hasValue bool
}

// NewPoint constructs a point without a value.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// NewSample constructs a point carrying a known value.
func NewSample(x, y, value float64) Point {
	return Point{X: x, Y: y, value: value, hasValue: true}
}

// Value returns the point's value and whether it is set.
func (p Point) Value() (float64, bool) {
	return p.value, p.hasValue
}

// HasValue reports whether the point has an associated value.
func (p Point) HasValue() bool {
	return p.hasValue
}

// Location returns a copy of p with the value cleared.
func (p Point) Location() Point {
	return Point{X: p.X, Y: p.Y}
}
