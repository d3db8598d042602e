// Package hull computes concave hulls of planar point sets by k-nearest-
// neighbour edge growing, after Moreira & Santos. Starting from the lowest
// point, the boundary is grown one vertex at a time by picking, among the k
// nearest unused points, the most clockwise turn that does not cross the
// existing boundary. When no neighbourhood size admits a boundary that
// contains the whole set, there is no hull.
package hull

// ConcaveHull returns the concave hull of points as its vertices in
// traversal order, or nil when no hull was found. Point ids must be unique;
// they are how hull vertices are matched back to the input.
//
// k is the initial neighbourhood size. When iterate is true, a failed
// attempt is retried with k+1 until k reaches the point count; when false,
// the first failure gives up immediately. Point sets of three or fewer are
// returned as-is, in input order, whatever k says.
func ConcaveHull(points []Point, k int, iterate bool) []Point {
	if len(points) <= 3 {
		return append([]Point(nil), points...)
	}

	// Each attempt gets a fresh index over the full point set, so nothing
	// a failed attempt consumed needs restoring.
	for k < len(points) {
		if hull, ok := growHull(points, k); ok {
			return hull
		}
		if !iterate {
			return nil
		}
		k++
	}

	return nil
}
