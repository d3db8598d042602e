package hull

// Point is a 2D point tagged with the dense index it held in the original
// input. The id is what ties a point between the working list, the spatial
// index and the finished hull, so identity is full structural equality: two
// points at the same coordinates with different ids are different points.
// This matters for the closing step, where a clone of the start point is
// re-inserted under a fresh id.
type Point struct {
	X  float64
	Y  float64
	ID uint64
}

// PointValue pairs a candidate point with its squared Euclidean distance
// from the current growth point and, once computed, its bearing relative to
// the previous hull edge. It only lives for one neighbour-selection round.
type PointValue struct {
	Point    Point
	Distance float64
	Angle    float64
}

type Segment struct {
	Start Point
	End   Point
}

// Polygon is an ordered vertex list, implicitly closed from the last vertex
// back to the first.
type Polygon []Point

type idSet map[uint64]struct{}
