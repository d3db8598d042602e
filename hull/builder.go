package hull

import "sort"

// growHull runs a single edge-growing attempt with a fixed neighbourhood
// size k. It returns the finished, validated hull, or ok == false when the
// attempt dead-ends or the finished polygon fails to contain every leftover
// point. A failed attempt yields no partial hull; the caller retries from
// scratch with a larger k.
func growHull(points []Point, k int) (Polygon, bool) {
	// Three points or fewer are their own hull.
	if len(points) <= 3 {
		return Polygon(append([]Point(nil), points...)), true
	}

	tree := NewKDTree(points)

	// Grow from the lowest point, ties broken toward the left.
	first := minYPoint(points)
	hull := Polygon{first}
	current := first

	// The start point must not be offered as its own neighbour.
	tree.Remove(current)

	prevAngle := 0.0
	step := 1

	// Grow until we are back at the start, or nothing is left to add.
	for (current != first || step == 1) && len(hull) != len(points) {
		if step == 4 {
			// Three edges in, closing the hull becomes legal. Re-enter the
			// start point as a clone under a fresh id: the clone is
			// reachable as an ordinary neighbour, while the id keeps it
			// distinct from the already-consumed true start. From here on,
			// first is the closure target.
			first.ID = uint64(len(points))
			tree.Insert(first)
		}

		candidates := sortByAngle(tree.NearestN(current, k), current, prevAngle)

		// Walk the candidates most-clockwise first; take the first one
		// whose edge crosses no non-adjacent hull edge.
		i := 0
		crosses := true
		for crosses && i < len(candidates) {
			// The edge into the current point always shares an endpoint
			// with the new edge and is exempt. When the candidate closes
			// the hull, the edge leading away from the start is exempt too.
			lastPoint := 0
			if candidates[i] == first {
				lastPoint = 1
			}

			j := 2
			crosses = false
			for !crosses && j < len(hull)-lastPoint {
				crosses = Intersects(
					Segment{hull[step-1], candidates[i]},
					Segment{hull[step-j-1], hull[step-j]},
				)
				j++
			}

			if crosses {
				i++
			}
		}

		if crosses {
			// Every candidate collides: dead end at this k.
			return nil, false
		}

		current = candidates[i]
		hull = append(hull, current)
		prevAngle = Angle(hull[step], hull[step-1])
		tree.Remove(current)
		step++
	}

	// Growth completed, but the attempt only counts if the polygon
	// swallowed the whole data set.
	if !hull.ContainsAll(withoutHull(points, hull)) {
		return nil, false
	}
	return hull, true
}

// minYPoint returns the point with minimum y, ties broken by minimum x.
func minYPoint(points []Point) Point {
	min := points[0]
	for _, p := range points[1:] {
		if p.Y < min.Y || (p.Y == min.Y && p.X < min.X) {
			min = p
		}
	}
	return min
}

// sortByAngle fills in each candidate's bearing relative to prevAngle and
// orders them descending, so the most clockwise available turn comes
// first. The sort is stable: candidates arrive ascending by distance, and
// equal bearings (collinear candidates) keep the nearer point first.
func sortByAngle(values []PointValue, from Point, prevAngle float64) []Point {
	for i := range values {
		values[i].Angle = NormalizeAngle(Angle(from, values[i].Point) - prevAngle)
	}
	sort.SliceStable(values, func(i, j int) bool {
		return values[i].Angle > values[j].Angle
	})

	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = v.Point
	}
	return points
}

// withoutHull returns the points that did not become hull vertices,
// matched by id.
func withoutHull(points []Point, hull Polygon) []Point {
	consumed := make(idSet, len(hull))
	for _, p := range hull {
		consumed[p.ID] = struct{}{}
	}

	var rest []Point
	for _, p := range points {
		if _, ok := consumed[p.ID]; !ok {
			rest = append(rest, p)
		}
	}
	return rest
}
