package geom

import "math"

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// ScaledDistance returns half the distance between a and b. The deltas are
// halved before they are combined, so the result is finite for any finite
// coordinates even where Distance overflows to +Inf.
func ScaledDistance(a, b Point) float64 {
	return math.Hypot(a.X/2-b.X/2, a.Y/2-b.Y/2)
}

// Distances returns the distance from a to every reference point. The result
// is index-aligned with refs.
func Distances(a Point, refs []Point) []float64 {
	out := make([]float64, len(refs))
	for i := range refs {
		out[i] = Distance(a, refs[i])
	}
	return out
}

// Nearest returns the index of the reference point closest to a and its
// distance. Ties resolve to the first point in input order. It returns -1 and
// +Inf for an empty slice.
//
// Points whose distance overflows to +Inf are ranked by ScaledDistance.
func Nearest(a Point, refs []Point) (int, float64) {
	if len(refs) == 0 {
		return -1, math.Inf(1)
	}
	best, bestDist := 0, Distance(a, refs[0])
	for i := 1; i < len(refs); i++ {
		d := Distance(a, refs[i])
		switch {
		case d < bestDist:
			best, bestDist = i, d
		case math.IsInf(d, 1) && math.IsInf(bestDist, 1):
			if ScaledDistance(a, refs[i]) < ScaledDistance(a, refs[best]) {
				best = i
			}
		}
	}
	return best, bestDist
}

// Bounds returns the lower-left and upper-right corners of the bounding box
// of refs. Both are the zero Point for an empty slice.
func Bounds(refs []Point) (min, max Point) {
	if len(refs) == 0 {
		return Point{}, Point{}
	}
	min = NewPoint(refs[0].X, refs[0].Y)
	max = min
	for _, p := range refs[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}
